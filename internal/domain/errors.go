package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// ValidationErr represents an error when input validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ToolNotFoundErr represents an error when an unknown tool name is requested.
type ToolNotFoundErr struct {
	domainErr
}

// NewToolNotFoundErr creates a new ToolNotFoundErr with the given message.
func NewToolNotFoundErr(message string) *ToolNotFoundErr {
	return &ToolNotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ConfigErr represents a missing or invalid required secret/key/endpoint.
// Config errors are fatal: they abort an orchestration run instead of being
// fed back to the model as a tool result.
type ConfigErr struct {
	domainErr
}

// NewConfigErr creates a new ConfigErr with the given message.
func NewConfigErr(message string) *ConfigErr {
	return &ConfigErr{
		domainErr: domainErr{message: message},
	}
}

// UpstreamErr represents a network failure or non-2xx response from the
// external game-data API.
type UpstreamErr struct {
	domainErr
	Status int
}

// NewUpstreamErr creates a new UpstreamErr with the given upstream status and message.
func NewUpstreamErr(status int, message string) *UpstreamErr {
	return &UpstreamErr{
		domainErr: domainErr{message: message},
		Status:    status,
	}
}

// InvalidStateErr represents a computation that cannot proceed from its
// inputs, such as a weighted average over a zero total count.
type InvalidStateErr struct {
	domainErr
}

// NewInvalidStateErr creates a new InvalidStateErr with the given message.
func NewInvalidStateErr(message string) *InvalidStateErr {
	return &InvalidStateErr{
		domainErr: domainErr{message: message},
	}
}

// RateLimitErr represents a rate-limit/quota failure classified from the
// LLM provider's error text.
type RateLimitErr struct {
	domainErr
}

// NewRateLimitErr creates a new RateLimitErr with the given message.
func NewRateLimitErr(message string) *RateLimitErr {
	return &RateLimitErr{
		domainErr: domainErr{message: message},
	}
}

// AuthErr represents an authentication/API-key failure classified from the
// LLM provider's error text, or a rejected shared secret.
type AuthErr struct {
	domainErr
}

// NewAuthErr creates a new AuthErr with the given message.
func NewAuthErr(message string) *AuthErr {
	return &AuthErr{
		domainErr: domainErr{message: message},
	}
}

// LoopLimitErr indicates the tool round-trip ceiling was hit before the
// model produced a final answer.
type LoopLimitErr struct {
	domainErr
}

// NewLoopLimitErr creates a new LoopLimitErr with the given message.
func NewLoopLimitErr(message string) *LoopLimitErr {
	return &LoopLimitErr{
		domainErr: domainErr{message: message},
	}
}

// ToolExecutionErr wraps a failure raised while executing a tool, carrying
// the tool name for context.
type ToolExecutionErr struct {
	Tool string
	Err  error
}

// Error returns the error message.
func (e *ToolExecutionErr) Error() string {
	return "tool " + e.Tool + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ToolExecutionErr) Unwrap() error {
	return e.Err
}

// NewToolExecutionErr creates a new ToolExecutionErr wrapping err.
func NewToolExecutionErr(tool string, err error) *ToolExecutionErr {
	return &ToolExecutionErr{Tool: tool, Err: err}
}
