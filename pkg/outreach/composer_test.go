package outreach_test

import (
	"context"
	"errors"
	mathrand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outreachkit/pkg/email"
	"github.com/dmitrymomot/outreachkit/pkg/outreach"
	"github.com/dmitrymomot/outreachkit/pkg/templater"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg email.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func seededComposer(seed uint64) *outreach.Composer {
	renderer := templater.New(
		templater.WithRandSource(mathrand.New(mathrand.NewPCG(seed, 0))),
	)
	return outreach.New(outreach.WithRenderer(renderer))
}

func testLead() outreach.Lead {
	return outreach.Lead{
		Email:     "jane@acme.io",
		FirstName: "Jane",
		Company:   "Acme",
		Custom:    map[string]any{"painPoint": "churn"},
	}
}

func testInbox() outreach.Inbox {
	return outreach.Inbox{
		FromName:  "Alex",
		FromEmail: "alex@senddomain.io",
		FirstName: "Alex",
		Company:   "Initech",
	}
}

func TestComposer_ComposeStep(t *testing.T) {
	t.Parallel()

	c := outreach.New(outreach.WithIDGenerator(func() string { return "msg-1" }))
	step := outreach.Step{
		Subject: "Quick question about {{company}}",
		Body:    "Hi {{firstName|there}}, noticed {{painPoint}} at {{company}}.",
		Tag:     "campaign-14-step-1",
	}

	msg := c.ComposeStep(step, testLead(), testInbox())

	assert.Equal(t, "msg-1", msg.ID)
	assert.Equal(t, "jane@acme.io", msg.To)
	assert.Equal(t, "Quick question about Acme", msg.Subject)
	assert.Equal(t, "Hi Jane, noticed churn at Acme.", msg.Body)
	assert.Equal(t, "campaign-14-step-1", msg.Tag)
}

// The correctness property the product leans on: the campaign send path and
// the reply path render the same template for the same lead to identical
// text.
func TestComposer_CampaignAndReplyPathsMatch(t *testing.T) {
	t.Parallel()

	const subject = "{Quick|Short} question about {{company}}"
	const body = "{Hi|Hey} {{firstName|there}},{if:painPoint} You mentioned {{painPoint}}.{/if} — {{senderFirstName}}"

	step := outreach.Step{Subject: subject, Body: body}

	fromStep := seededComposer(99).ComposeStep(step, testLead(), testInbox())
	fromReply := seededComposer(99).ComposeReply(subject, body, testLead(), testInbox())

	assert.Equal(t, fromStep.Subject, fromReply.Subject)
	assert.Equal(t, fromStep.Body, fromReply.Body)
}

func TestComposer_PreviewStep(t *testing.T) {
	t.Parallel()

	c := outreach.New()
	step := outreach.Step{
		Subject: "{Quick|Short} question",
		Body:    "Hi {{firstName}}",
	}

	subject0, body0 := c.PreviewStep(step, testLead(), testInbox(), 0)
	assert.Equal(t, "Quick question", subject0)
	assert.Equal(t, "Hi Jane", body0)

	subject1, _ := c.PreviewStep(step, testLead(), testInbox(), 1)
	assert.Equal(t, "Short question", subject1)

	// Same index, same output, every time.
	again, _ := c.PreviewStep(step, testLead(), testInbox(), 1)
	assert.Equal(t, subject1, again)

	// Index wraps around the variation count.
	wrapped, _ := c.PreviewStep(step, testLead(), testInbox(), 2)
	assert.Equal(t, subject0, wrapped)
}

func TestComposer_Send(t *testing.T) {
	t.Parallel()

	t.Run("delivers the rendered message", func(t *testing.T) {
		t.Parallel()

		sender := new(mockSender)
		sender.On("Send", mock.Anything, email.Message{
			To:       "jane@acme.io",
			Subject:  "Quick question",
			BodyHTML: "Hi Jane",
			Tag:      "step-1",
		}).Return(nil)

		c := outreach.New()
		msg := outreach.Message{
			ID:      "msg-1",
			To:      "jane@acme.io",
			Subject: "Quick question",
			Body:    "Hi Jane",
			Tag:     "step-1",
		}
		require.NoError(t, c.Send(context.Background(), sender, msg))
		sender.AssertExpectations(t)
	})

	t.Run("wraps delivery failures with the message id", func(t *testing.T) {
		t.Parallel()

		sender := new(mockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("postmark down"))

		c := outreach.New()
		err := c.Send(context.Background(), sender, outreach.Message{
			ID:      "msg-2",
			To:      "jane@acme.io",
			Subject: "s",
			Body:    "b",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "msg-2")
		assert.Contains(t, err.Error(), "postmark down")
	})
}

func TestComposer_DefaultIDsAreUnique(t *testing.T) {
	t.Parallel()

	c := outreach.New()
	step := outreach.Step{Subject: "s", Body: "b"}

	first := c.ComposeStep(step, testLead(), testInbox())
	second := c.ComposeStep(step, testLead(), testInbox())
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestNewFromConfig_VariationCap(t *testing.T) {
	t.Parallel()

	c := outreach.NewFromConfig(outreach.Config{MaxVariations: 2})
	step := outreach.Step{Subject: "{a|b|c|d}", Body: "x"}

	// With the cap at 2 only the first two expansions exist, so index 2
	// wraps back to the first.
	s0, _ := c.PreviewStep(step, testLead(), testInbox(), 0)
	s2, _ := c.PreviewStep(step, testLead(), testInbox(), 2)
	assert.Equal(t, s0, s2)
}
