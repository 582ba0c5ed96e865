package pidcell

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/cmdlsh/cmdl/internal/shmseg"
)

const cellSize = 8

// Cell is a named shared-memory region holding exactly one PID.
type Cell struct {
	seg   *shmseg.Segment
	owner bool
	ptr   *uint64
}

// Create allocates a new, empty PID cell under name. It fails if one
// already exists, mirroring shm_open's O_CREAT|O_EXCL.
func Create(name string) (*Cell, error) {
	seg, err := shmseg.Create(name, cellSize)
	if err != nil {
		return nil, err
	}
	c := &Cell{seg: seg, owner: true, ptr: (*uint64)(unsafe.Pointer(&seg.Data[0]))}
	atomic.StoreUint64(c.ptr, 0)
	return c, nil
}

// Open attaches to an existing PID cell.
func Open(name string) (*Cell, error) {
	seg, err := shmseg.Open(name, cellSize)
	if err != nil {
		return nil, fmt.Errorf("pidcell: open %s: %w", name, err)
	}
	return &Cell{seg: seg, owner: false, ptr: (*uint64)(unsafe.Pointer(&seg.Data[0]))}, nil
}

// Store records pid. The daemon calls this once, right after detaching.
func (c *Cell) Store(pid int32) {
	atomic.StoreUint64(c.ptr, uint64(pid))
}

// Load returns the currently stored PID, or 0 if none has been stored yet.
func (c *Cell) Load() int32 {
	return int32(atomic.LoadUint64(c.ptr))
}

// Close detaches without destroying the cell.
func (c *Cell) Close() error {
	return c.seg.Close()
}

// Dispose removes the cell's backing segment. Only the owning daemon
// should call Dispose, during shutdown.
func (c *Cell) Dispose() error {
	if !c.owner {
		return fmt.Errorf("pidcell: Dispose called on a non-owning attachment")
	}
	return c.seg.Dispose()
}
