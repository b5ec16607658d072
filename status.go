package httpecho

import (
	"net/http"
	"strconv"

	"github.com/always-cache/httpecho/rfc9110"
)

const unknownReasonPhrase = "Unknown status code"

// StatusDecision is the outcome of asking for a status code.
type StatusDecision struct {
	RequestedCode uint16
	// ValidLookup is set when the registry has a phrase for the requested code.
	ValidLookup  bool
	ReasonPhrase string
	// EmittedCode is the status actually sent.
	// Interim codes cannot be a final response and are sent as 200.
	EmittedCode uint16
}

// ResolveStatus decides the response for a requested status code.
// It fails with a ClientInputError if the code is not a status code at all.
func ResolveStatus(code uint16) (StatusDecision, error) {
	reason, ok, err := rfc9110.StatusReason(code)
	if err != nil {
		return StatusDecision{}, clientInputErrorf("%w: %d", err, code)
	}
	if !ok {
		reason = unknownReasonPhrase
	}
	d := StatusDecision{
		RequestedCode: code,
		ValidLookup:   ok,
		ReasonPhrase:  reason,
		EmittedCode:   code,
	}
	if rfc9110.Interim(code) {
		d.EmittedCode = http.StatusOK
	}
	return d, nil
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) error {
	param, err := pathParam(r, "code")
	if err != nil {
		return err
	}
	code, err := strconv.ParseUint(param, 10, 16)
	if err != nil {
		return clientInputErrorf("invalid status code %q: %w", param, err)
	}
	d, err := ResolveStatus(uint16(code))
	if err != nil {
		return err
	}
	getLogger(r).Trace().Uint16("requested", d.RequestedCode).Uint16("emitted", d.EmittedCode).Msg("Resolved status")
	writeText(w, r, int(d.EmittedCode), d.ReasonPhrase)
	return nil
}
