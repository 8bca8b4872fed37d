package assistant

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/zulandar/clerk/internal/store"
	"gorm.io/gorm"
)

// Context identifies who is talking and where. IsAdmin gates the privileged
// tool routes; ChannelID scopes the slot-filling session.
type Context struct {
	UserID    string
	ChannelID string
	Platform  string
	IsAdmin   bool
}

// Response is one engine turn: the classified intent, the reply text, and —
// when a tool fired or a flow completed — the structured outcome.
type Response struct {
	Intent       Intent          `json:"intent"`
	Reply        string          `json:"reply"`
	QuickReplies []string        `json:"quickReplies,omitempty"`
	Tool         string          `json:"tool,omitempty"`
	ToolResult   *DispatchResult `json:"toolResult,omitempty"`
	Action       string          `json:"action,omitempty"`
	Data         map[string]any  `json:"data,omitempty"`
}

// EngineOpts configures a new Engine. DB is optional: without it the engine
// still classifies and converses, but tools and transcripts are unavailable.
type EngineOpts struct {
	DB         *gorm.DB
	Registry   *Registry
	Dispatcher *Dispatcher
	Out        io.Writer
}

// Engine is the deterministic support assistant. It is safe for concurrent
// use; sessions are keyed "channelID:userID" and updated last-write-wins.
type Engine struct {
	db         *gorm.DB
	registry   *Registry
	dispatcher *Dispatcher
	out        io.Writer

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewEngine builds an engine from opts. A missing registry gets an empty one;
// a missing dispatcher is built over the registry.
func NewEngine(opts EngineOpts) (*Engine, error) {
	if opts.Out == nil {
		return nil, fmt.Errorf("assistant: engine: output writer is required")
	}
	registry := opts.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = NewDispatcher(registry)
	}
	return &Engine{
		db:         opts.DB,
		registry:   registry,
		dispatcher: dispatcher,
		out:        opts.Out,
		sessions:   make(map[string]*Session),
	}, nil
}

func sessionKey(ec Context) string {
	return ec.ChannelID + ":" + ec.UserID
}

// session returns the conversation session for the caller, replacing invalid
// or turn-terminal (Reset/Cancelled) sessions with a fresh idle one.
func (e *Engine) session(ec Context) *Session {
	key := sessionKey(ec)
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.sessions[key]
	if !s.Valid() || s.Stage == StageReset || s.Stage == StageCancelled {
		s = NewSession()
		e.sessions[key] = s
	}
	return s
}

// Session exposes the caller's current session for inspection. Tests and the
// HTTP API use it; conversational flow goes through Handle.
func (e *Engine) Session(ec Context) *Session {
	return e.session(ec)
}

// Dispatch runs a named tool directly, bypassing routing and conversation
// state. The HTTP API uses it for explicit tool invocations.
func (e *Engine) Dispatch(ctx context.Context, name string, params Params, tc ToolContext) *DispatchResult {
	return e.dispatcher.Execute(ctx, name, params, tc)
}

// canned replies per intent for turns that neither run a tool nor collect
// slots.
var intentReplies = map[Intent]string{
	IntentApplyToWork:       "Great — applications go through a short assessment. Say \"I'd like an interview\" and I'll set one up.",
	IntentAssistantIdentity: "I'm Clerk, the support assistant for this store. I can show you services, check orders and wallets, and open tickets.",
	IntentPaymentHelp:       "I can help with payments and refunds. Check your wallet, review your orders, or open a ticket and the team will look into it.",
	IntentOrderDelivery:     "Sorry about the delivery trouble. I can show your orders with their current status, or open a ticket for the team.",
	IntentBuyService:        "Happy to help you buy. Say \"show me available services\" to browse the catalog.",
	IntentGeneralSupport:    "I can show services and rentals, check your orders and wallet, or open a support ticket. What do you need?",
}

var slotPrompts = map[string]string{
	"platform": "Which platform is this for?",
	"urgency":  "How soon do you need it?",
}

var flowOpeners = map[Intent]string{
	IntentInterviewAssessment: "Let's set up your interview assessment.",
	IntentCustomService:       "Let's put together your custom request.",
}

// Handle processes one user message and returns the engine's turn. It never
// returns an error to the transport: failures inside tools surface as coded
// results, and everything else degrades to a conversational reply.
func (e *Engine) Handle(ctx context.Context, ec Context, message string) *Response {
	s := e.session(ec)
	normalized := Normalize(message)
	fmt.Fprintf(e.out, "engine: %s/%s stage=%s message=%q\n", ec.Platform, sessionKey(ec), s.Stage, normalized)

	resp := e.handleTurn(ctx, ec, s, message, normalized)
	e.recordTurns(ec, message, resp)
	return resp
}

func (e *Engine) handleTurn(ctx context.Context, ec Context, s *Session, raw, normalized string) *Response {
	// Cancellation beats everything, including an active flow.
	if WantsCancel(normalized) {
		s.Cancel()
		return &Response{
			Intent:       IntentCancelled,
			Reply:        "No problem, I've dropped that. Ask me anything when you're ready.",
			QuickReplies: IntentQuickReplies(IntentGeneralSupport),
		}
	}

	// A bare greeting resets an in-flight flow; otherwise it is a welcome.
	if IsGreeting(normalized) {
		if s.Stage == StageCollecting {
			s.Reset()
			return &Response{
				Intent:       IntentGreetingReset,
				Reply:        "Hi again! I've cleared what we had going. What can I help you with?",
				QuickReplies: IntentQuickReplies(IntentGeneralSupport),
			}
		}
		return &Response{
			Intent:       IntentGreetingReset,
			Reply:        "Hi! I'm Clerk. I can show you services, check your orders and wallet, or open a ticket.",
			QuickReplies: IntentQuickReplies(IntentGeneralSupport),
		}
	}

	// Mid-flow messages feed the slot extractors before anything else.
	if s.Stage == StageCollecting {
		s.Merge(map[string]string{
			"platform": ExtractPlatform(normalized),
			"urgency":  ExtractUrgency(normalized),
		})
		if s.Stage == StageReady {
			return e.finalizeFlow(s)
		}
		return e.promptForSlots(s)
	}

	intent := ClassifyIntent(normalized)

	// Tool routing runs alongside classification; a routed tool carries the
	// turn, and the classified intent is still reported on the response.
	if match := RouteToTool(raw, normalized, ec.IsAdmin); match != nil {
		fmt.Fprintf(e.out, "engine: routed %s/%s to tool %s\n", ec.Platform, sessionKey(ec), match.Tool)
		result := e.dispatcher.Execute(ctx, match.Tool, match.Params, ToolContext{
			UserID:  ec.UserID,
			IsAdmin: ec.IsAdmin,
		})
		reply := result.Message
		if reply == "" {
			if result.Success {
				reply = "Done."
			} else {
				reply = result.Error
			}
		}
		return &Response{
			Intent:     intent,
			Reply:      reply,
			Tool:       match.Tool,
			ToolResult: result,
		}
	}

	if IsConfused(normalized) {
		return &Response{
			Intent:       intent,
			Reply:        "Let me make that simpler — pick one of these and we'll go from there.",
			QuickReplies: ClarifyQuickReplies(),
		}
	}

	// Slot-bearing intents open a flow; slots already present in the first
	// message are collected immediately.
	if RequiresSlots(intent) {
		s.Begin(intent)
		s.Merge(map[string]string{
			"platform": ExtractPlatform(normalized),
			"urgency":  ExtractUrgency(normalized),
		})
		if s.Stage == StageReady {
			return e.finalizeFlow(s)
		}
		resp := e.promptForSlots(s)
		resp.Reply = flowOpeners[s.ActiveFlow] + " " + resp.Reply
		return resp
	}

	return &Response{
		Intent:       intent,
		Reply:        intentReplies[intent],
		QuickReplies: IntentQuickReplies(intent),
	}
}

// promptForSlots asks for the first missing slot of the active flow.
func (e *Engine) promptForSlots(s *Session) *Response {
	missing := s.MissingSlots()
	prompt := "Tell me a bit more."
	if len(missing) > 0 {
		if p, ok := slotPrompts[missing[0]]; ok {
			prompt = p
		}
	}
	return &Response{
		Intent:       s.ActiveFlow,
		Reply:        prompt,
		QuickReplies: SlotQuickReplies(s.ActiveFlow, s.Collected),
	}
}

// finalizeFlow consumes a Ready session into a submitRequest action carrying
// the collected slots. The session returns to idle.
func (e *Engine) finalizeFlow(s *Session) *Response {
	flow := s.ActiveFlow
	collected := s.Finalize()
	data := make(map[string]any, len(collected)+1)
	for k, v := range collected {
		data[k] = v
	}
	data["request"] = string(flow)
	return &Response{
		Intent: flow,
		Reply: fmt.Sprintf("Got it — %s on %s. I've submitted your request and the team will follow up.",
			collected["urgency"], collected["platform"]),
		Action: "submitRequest",
		Data:   data,
	}
}

// recordTurns persists the user message and the reply to the transcript.
// Persistence is best-effort: a failure is logged, never surfaced.
func (e *Engine) recordTurns(ec Context, message string, resp *Response) {
	if e.db == nil || ec.UserID == "" {
		return
	}
	session, err := store.FindOrCreateChatSession(e.db, ec.Platform, ec.ChannelID, ec.UserID)
	if err != nil {
		fmt.Fprintf(e.out, "engine: transcript session: %v\n", err)
		return
	}
	if err := store.AppendTurn(e.db, session.ID, "user", message, string(resp.Intent), ""); err != nil {
		fmt.Fprintf(e.out, "engine: transcript user turn: %v\n", err)
		return
	}
	if err := store.AppendTurn(e.db, session.ID, "assistant", resp.Reply, string(resp.Intent), resp.Tool); err != nil {
		fmt.Fprintf(e.out, "engine: transcript assistant turn: %v\n", err)
	}
}
