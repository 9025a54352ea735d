package interfaces

// Subscription is the handle returned by Subscribe. Consumers must call
// Unsubscribe on teardown; the registry only ever holds the callback, never
// any consumer state.
type Subscription interface {
	Unsubscribe()
}

// IChangeBroadcaster fans out "something changed, refetch" signals to every
// live cache instance. Callbacks carry no payload: subscribers blindly
// re-fetch their own filtered view, which keeps the consistency model free
// of any merge logic.

type IChangeBroadcaster interface {
	Subscribe(callback func()) Subscription
	Notify()
}
