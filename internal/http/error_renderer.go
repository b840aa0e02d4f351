package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/bankingapplication/bank-ui/internal/gateway"
)

const errMsgFixBelow = "Please fix the errors below."

// ErrorRenderer is a function that renders an error template with the given data.
// This allows the error renderer to work with different rendering strategies.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data any)

// ErrorOpts contains all options needed to render an error response.
type ErrorOpts struct {
	// W is the HTTP response writer
	W http.ResponseWriter
	// R is the HTTP request
	R *http.Request
	// Err is the error that occurred (optional, can be nil if only field errors)
	Err error
	// FieldErrors contains field-level validation errors (field name → error message)
	FieldErrors map[string]string
	// Renderer is the function to render the error template
	// This is typically h.renderPage or a similar function
	Renderer ErrorRenderer
	// PageMeta contains page metadata (title, current page, etc.)
	PageMeta PageMeta
	// Data contains additional template data to pass to the renderer
	// This is useful for preserving form data, dropdown options, etc.
	Data map[string]any
	// StatusCode is the HTTP status code to set (optional, defaults to 200 for HTMX compatibility)
	StatusCode int
	// ShowToast triggers a toast notification with the error message (optional)
	// When true, sends an HX-Trigger header with showToast event
	ShowToast bool
}

// RenderError renders an error response using consistent error handling patterns.
// It maps upstream service errors to user-facing messages, supports field-level
// validation errors, and integrates with HTMX partial updates.
//
// Usage examples:
//
//	// Validation errors
//	RenderError(ErrorOpts{
//	    W: w, R: r,
//	    FieldErrors: map[string]string{"amount": "Amount must be greater than zero."},
//	    Renderer: h.renderPage,
//	    PageMeta: PageMeta{Title: "Deposit", CurrentPage: PageDeposit},
//	})
//
//	// Upstream service error with additional data
//	RenderError(ErrorOpts{
//	    W: w, R: r,
//	    Err: err, // APIError messages surface verbatim
//	    Renderer: h.renderPage,
//	    PageMeta: PageMeta{Title: "Transfer Money", CurrentPage: PageTransfer},
//	    Data: map[string]any{"Accounts": accounts},
//	})
func RenderError(opts ErrorOpts) {
	// Guard: ensure renderer is provided
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta)

	generalError := processError(opts.Err)

	if len(opts.FieldErrors) > 0 {
		builder.WithFieldErrors(opts.FieldErrors)
	}

	if generalError != "" {
		builder.WithError(generalError)
	} else if len(opts.FieldErrors) > 0 {
		// If we have field errors but no general error, use default message
		builder.WithError(errMsgFixBelow)
	}

	if opts.Data != nil {
		for k, v := range opts.Data {
			builder.With(k, v)
		}
	}

	if opts.ShowToast && generalError != "" {
		triggerToast(opts.W, generalError, "error")
	}

	if opts.StatusCode != 0 {
		opts.W.WriteHeader(opts.StatusCode)
	}

	opts.Renderer(opts.W, opts.R, builder.Build())
}

// processError processes an error and returns a user-friendly error message.
// Backend messages carried by APIError surface verbatim, matching what the
// auth and account services already phrase for end users. Returns empty
// string if err is nil.
func processError(err error) string {
	if err == nil {
		return ""
	}

	// Distinguish between timeout and cancellation for better UX
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out. Please try again."
	}
	if errors.Is(err, context.Canceled) {
		return "Request was canceled."
	}

	// A rejected bearer token means the session is dead; handlers normally
	// intercept this before rendering, but keep the message sensible if one
	// slips through.
	if errors.Is(err, gateway.ErrUnauthorized) {
		return "Session expired. Please login again."
	}

	return gateway.UserMessage(err)
}
