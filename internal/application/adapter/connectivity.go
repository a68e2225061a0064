package adapter

// ConnectivityMonitor is the single source of truth for network state.
// All components consult it instead of probing the environment directly,
// so the same core runs under any host with any connectivity signal.
type ConnectivityMonitor interface {
	// Online reports the last observed connectivity state.
	Online() bool

	// Subscribe registers a callback invoked on every state transition
	// with the new state. The returned function unregisters it.
	Subscribe(fn func(online bool)) (unsubscribe func())
}
