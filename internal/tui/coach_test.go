package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ramavadhoota/fitflow/internal/api"
)

func newTestCoach(t *testing.T) coachModel {
	t.Helper()
	app := newTestApp(nil)
	signIn(app)
	cm, _ := newCoachModel(app, context.Background(), 80, 24)
	cm, _ = cm.Update(ChatHistoryLoadedMsg{ReqID: cm.reqID})
	return cm
}

// TestSendAppendsUserMessageAndBlocksInput checks that sending shows the
// user's message immediately and locks the input until the reply lands.
func TestSendAppendsUserMessageAndBlocksInput(t *testing.T) {
	cm := newTestCoach(t)
	cm.input.SetValue("hello")

	cm, cmd := cm.send()
	if cmd == nil {
		t.Fatal("send must dispatch the chat request")
	}

	if len(cm.messages) != 1 {
		t.Fatalf("expected one message, got %d", len(cm.messages))
	}
	last := cm.messages[0]
	if last.Role != "user" || last.Content != "hello" {
		t.Errorf("unexpected message %+v", last)
	}
	if !cm.busy {
		t.Error("send must mark the chat busy")
	}
	if cm.input.Value() != "" {
		t.Error("send must clear the input")
	}

	cm, _ = cm.Update(keyRunes("x"))
	if cm.input.Value() != "" {
		t.Error("keystrokes must be ignored while a send is in flight")
	}
}

// TestReplyAppendsAssistantMessage covers the reply path.
func TestReplyAppendsAssistantMessage(t *testing.T) {
	cm := newTestCoach(t)
	cm.input.SetValue("hello")
	cm, _ = cm.send()

	cm, _ = cm.Update(ChatReplyMsg{
		ReqID: cm.sendReqID,
		Reply: api.ChatReply{ID: "5", Response: "hi"},
	})

	if cm.busy {
		t.Error("reply must clear the busy flag")
	}
	if len(cm.messages) != 2 {
		t.Fatalf("expected user + assistant messages, got %d", len(cm.messages))
	}
	last := cm.messages[1]
	if last.Role != "assistant" || last.Content != "hi" || last.ID != "5" {
		t.Errorf("unexpected assistant message %+v", last)
	}
}

// TestSendFailureAppendsFallback checks that the user's message stays and a
// canned assistant apology is appended in place of the reply.
func TestSendFailureAppendsFallback(t *testing.T) {
	cm := newTestCoach(t)
	cm.input.SetValue("hello")
	cm, _ = cm.send()

	cm, _ = cm.Update(ChatReplyMsg{
		ReqID: cm.sendReqID,
		Err:   &api.Error{Kind: api.KindTransport, Op: "send chat message"},
	})

	if cm.busy {
		t.Error("failure must clear the busy flag")
	}
	if len(cm.messages) != 2 {
		t.Fatalf("expected user + fallback messages, got %d", len(cm.messages))
	}
	if cm.messages[0].Content != "hello" {
		t.Error("the user's message must survive a failed send")
	}
	last := cm.messages[1]
	if last.Role != "assistant" || last.Content != coachFallback {
		t.Errorf("expected fallback reply, got %+v", last)
	}
}

// TestEmptyInputDoesNotSend guards against blank sends once the topic list
// has scrolled away.
func TestEmptyInputDoesNotSend(t *testing.T) {
	cm := newTestCoach(t)
	cm.input.SetValue("hi")
	cm, _ = cm.send()
	cm, _ = cm.Update(ChatReplyMsg{ReqID: cm.sendReqID, Reply: api.ChatReply{ID: "1", Response: "ok"}})

	before := len(cm.messages)
	cm, cmd := cm.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(cm.messages) != before {
		t.Errorf("enter with empty input must not send, messages %d", len(cm.messages))
	}
	if cmd != nil {
		t.Error("no request may be dispatched for an empty message")
	}
}

// TestTopicShortcutSendsSuggestedPrompt checks that enter on a fresh
// conversation submits the highlighted topic.
func TestTopicShortcutSendsSuggestedPrompt(t *testing.T) {
	cm := newTestCoach(t)

	cm, _ = cm.Update(tea.KeyMsg{Type: tea.KeyDown})
	if cm.topicCursor != 1 {
		t.Fatalf("expected topic cursor 1, got %d", cm.topicCursor)
	}

	cm, cmd := cm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("topic selection must dispatch a send")
	}
	if len(cm.messages) != 1 || cm.messages[0].Content != suggestedTopics[1] {
		t.Errorf("expected the highlighted topic as the user message, got %+v", cm.messages)
	}
}
