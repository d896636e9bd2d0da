package templater

// Vars is the raw variable map supplied by the caller: recipient fields,
// sender fields, and custom fields, all plain strings. A key mapped to the
// empty string and an absent key are distinct states; conditionals treat both
// as absent while plain injection substitutes the former.
type Vars map[string]string

// aliasFamilies pairs the camelCase and snake_case spellings of variable
// names that must always resolve to the same value. The registry is closed:
// any key outside it (email, company, title, phone, arbitrary custom fields)
// has no alias and passes through Normalize untouched.
var aliasFamilies = [...][2]string{
	{"firstName", "first_name"},
	{"lastName", "last_name"},
	{"fullName", "full_name"},
	{"fromName", "from_name"},
	{"fromEmail", "from_email"},
	{"senderFirstName", "sender_first_name"},
	{"senderLastName", "sender_last_name"},
	{"senderCompany", "sender_company"},
	{"senderTitle", "sender_title"},
	{"senderPhone", "sender_phone"},
	{"senderWebsite", "sender_website"},
}

// Normalize returns a copy of vars closed under the alias-family relation:
// for every family where exactly one spelling is present, the missing
// spelling is added with the identical value, even when that value is empty.
// When both spellings are already present they are left exactly as given,
// conflicting values included. Normalize is pure, total, and idempotent.
func Normalize(vars Vars) Vars {
	out := make(Vars, len(vars)+len(aliasFamilies))
	for k, v := range vars {
		out[k] = v
	}
	for _, family := range aliasFamilies {
		camel, snake := family[0], family[1]
		cv, hasCamel := out[camel]
		sv, hasSnake := out[snake]
		switch {
		case hasCamel && !hasSnake:
			out[snake] = cv
		case hasSnake && !hasCamel:
			out[camel] = sv
		}
	}
	return out
}
