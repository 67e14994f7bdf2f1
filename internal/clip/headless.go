package clip

// headlessBackend is used in environments without a display server or
// clipboard utility (headless servers, containers, CI). Every read fails
// with ErrAccess, so nothing is ever logged.
type headlessBackend struct{}

func newHeadless() Reader { return &headlessBackend{} }

func (b *headlessBackend) Name() string         { return "headless (no-op)" }
func (b *headlessBackend) Read() (Value, error) { return Value{}, ErrAccess }
func (b *headlessBackend) Close()               {}
