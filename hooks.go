package base26

// Hooks lightweight callbacks for decode events.
// Implementations MUST be cheap, non-blocking and safe for concurrent use.
// The codec calls them inline from Decode.
type Hooks interface {
	// Decode failed and returned no value.
	// reason ∈ {"invalid_char", "overflow"}
	DecodeRejected(reason string, length int)

	// The input exceeded uint64 and the configured policy produced a value anyway.
	// policy ∈ {"wrap", "saturate"}
	OverflowHandled(policy string, length int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) DecodeRejected(string, int)  {}
func (NopHooks) OverflowHandled(string, int) {}
