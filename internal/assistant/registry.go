package assistant

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Dispatch error codes. These are stable identifiers surfaced to callers;
// the accompanying messages are safe to show to users.
const (
	CodeToolNotFound   = "TOOL_NOT_FOUND"
	CodeAuthRequired   = "AUTH_REQUIRED"
	CodeAdminRequired  = "ADMIN_REQUIRED"
	CodeInvalidParams  = "INVALID_PARAMS"
	CodeExecutionError = "EXECUTION_ERROR"
)

// ToolContext identifies the caller for permission checks and ownership
// scoping inside executors.
type ToolContext struct {
	UserID  string
	IsAdmin bool
}

// ToolResult is what an executor produces on success, or on a validation
// failure it wants reported conversationally (Message set, Data nil).
type ToolResult struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Summary any    `json:"summary,omitempty"`
	Action  string `json:"action,omitempty"`
}

// Executor runs one tool.
type Executor interface {
	Execute(ctx context.Context, params Params, tc ToolContext) (*ToolResult, error)
}

// ToolDefinition binds a tool name to its executor and permission flags.
type ToolDefinition struct {
	Name         string
	RequiresAuth bool
	AdminOnly    bool
	Executor     Executor
}

// Registry holds the registered tools. Registration happens at startup;
// lookups are concurrent.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*ToolDefinition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*ToolDefinition)}
}

// Register adds a tool definition. Registering a nil definition, an unnamed
// tool, or a duplicate name is an error.
func (r *Registry) Register(def *ToolDefinition) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("assistant: registry: tool definition requires a name")
	}
	if def.Executor == nil {
		return fmt.Errorf("assistant: registry: tool %q requires an executor", def.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[def.Name]; exists {
		return fmt.Errorf("assistant: registry: tool %q already registered", def.Name)
	}
	r.tools[def.Name] = def
	return nil
}

// Get returns the definition for a tool name, or nil if unknown.
func (r *Registry) Get(name string) *ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DispatchResult is the envelope returned for every tool invocation,
// successful or not. OperationID is assigned per invocation for tracing.
type DispatchResult struct {
	Success     bool   `json:"success"`
	ToolName    string `json:"toolName"`
	OperationID string `json:"operationId"`
	Data        any    `json:"data,omitempty"`
	Message     string `json:"message,omitempty"`
	Summary     any    `json:"summary,omitempty"`
	Action      string `json:"action,omitempty"`
	Error       string `json:"error,omitempty"`
	Code        string `json:"code,omitempty"`
}

// Dispatcher runs registered tools with permission checks and panic
// containment. Executor failures never escape as errors; they come back as
// DispatchResults with a code, and detail goes to the log only.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher returns a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Execute runs the named tool. Check order: unknown tool, missing identity,
// missing admin, then execution. The returned result always carries the tool
// name and a fresh operation ID.
func (d *Dispatcher) Execute(ctx context.Context, name string, params Params, tc ToolContext) *DispatchResult {
	res := &DispatchResult{
		ToolName:    name,
		OperationID: uuid.NewString(),
	}

	def := d.registry.Get(name)
	if def == nil {
		res.Error = fmt.Sprintf("unknown tool %q", name)
		res.Code = CodeToolNotFound
		return res
	}
	if def.RequiresAuth && tc.UserID == "" {
		res.Error = "this tool requires an identified user"
		res.Code = CodeAuthRequired
		return res
	}
	if def.AdminOnly && !tc.IsAdmin {
		res.Error = "this tool requires admin privileges"
		res.Code = CodeAdminRequired
		return res
	}

	result, err := d.run(ctx, def, params, tc)
	if err != nil {
		log.Printf("assistant: tool %s operation %s failed: %v", name, res.OperationID, err)
		res.Error = "the operation could not be completed"
		res.Code = CodeExecutionError
		return res
	}

	res.Success = true
	if result != nil {
		res.Data = result.Data
		res.Message = result.Message
		res.Summary = result.Summary
		res.Action = result.Action
	}
	return res
}

// run invokes the executor with panic containment so a misbehaving tool
// cannot take down the engine.
func (d *Dispatcher) run(ctx context.Context, def *ToolDefinition, params Params, tc ToolContext) (result *ToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("tool %s panicked: %v", def.Name, r)
		}
	}()
	return def.Executor.Execute(ctx, params, tc)
}
