package constants

// Event Queue Configuration
const (
	// EventQueueSize is the capacity of the feedback event ring buffer, must be a power of 2
	EventQueueSize = 256

	// EventBufferMask is used for efficient modulo operation in the ring buffer
	EventBufferMask = EventQueueSize - 1
)
