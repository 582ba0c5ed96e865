package squeue

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/cmdlsh/cmdl/internal/ipcsem"
	"github.com/cmdlsh/cmdl/internal/shmseg"
)

const (
	offsetHead     = 0
	offsetTail     = 8
	offsetLength   = 16
	offsetCapacity = 24
	offsetSlotSize = 32
	headerSize     = 40

	offsetMutex    = headerSize
	offsetNotFull  = headerSize + ipcsem.Size
	offsetNotEmpty = headerSize + 2*ipcsem.Size
	offsetSlots    = headerSize + 3*ipcsem.Size
)

// Queue is the bounded request queue shared between the daemon and every
// client. Create it once from the daemon; every client attaches with Open.
type Queue struct {
	seg        *shmseg.Segment
	owner      bool
	capacity   uint64
	mutex      *ipcsem.Semaphore
	notFull    *ipcsem.Semaphore
	notEmpty   *ipcsem.Semaphore
	headPtr    *uint64
	tailPtr    *uint64
	lengthPtr  *uint64
}

func byteSize(capacity int) int {
	return offsetSlots + capacity*RequestSize
}

// Create allocates a new empty queue of the given capacity under name. It
// fails if a queue with that name already exists.
func Create(name string, capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("squeue: capacity must be positive, got %d", capacity)
	}
	seg, err := shmseg.Create(name, byteSize(capacity))
	if err != nil {
		return nil, err
	}
	q := attach(seg, true)
	atomic.StoreUint64(q.headPtr, 0)
	atomic.StoreUint64(q.tailPtr, 0)
	atomic.StoreUint64(q.lengthPtr, 0)
	binary.LittleEndian.PutUint64(seg.Data[offsetCapacity:], uint64(capacity))
	binary.LittleEndian.PutUint64(seg.Data[offsetSlotSize:], uint64(RequestSize))
	q.capacity = uint64(capacity)
	q.mutex.Init(1)
	q.notFull.Init(uint64(capacity))
	q.notEmpty.Init(0)
	return q, nil
}

// Open attaches to an existing queue previously made with Create. Unlike
// Create, Open does not need to be told the queue's capacity: it first
// attaches just the header to read the capacity the owning daemon recorded,
// then re-attaches the full region, the same two-step discovery a process
// with no other way to learn another process's shared-memory layout must
// use.
func Open(name string) (*Queue, error) {
	header, err := shmseg.Open(name, headerSize)
	if err != nil {
		return nil, fmt.Errorf("squeue: open %s: %w", name, err)
	}
	capacity := binary.LittleEndian.Uint64(header.Data[offsetCapacity:])
	if err := header.Close(); err != nil {
		return nil, fmt.Errorf("squeue: open %s: %w", name, err)
	}

	seg, err := shmseg.Open(name, byteSize(int(capacity)))
	if err != nil {
		return nil, fmt.Errorf("squeue: open %s: %w", name, err)
	}
	q := attach(seg, false)
	q.capacity = capacity
	return q, nil
}

func attach(seg *shmseg.Segment, owner bool) *Queue {
	base := unsafe.Pointer(&seg.Data[0])
	return &Queue{
		seg:       seg,
		owner:     owner,
		mutex:     ipcsem.At(unsafe.Add(base, offsetMutex)),
		notFull:   ipcsem.At(unsafe.Add(base, offsetNotFull)),
		notEmpty:  ipcsem.At(unsafe.Add(base, offsetNotEmpty)),
		headPtr:   (*uint64)(unsafe.Add(base, offsetHead)),
		tailPtr:   (*uint64)(unsafe.Add(base, offsetTail)),
		lengthPtr: (*uint64)(unsafe.Add(base, offsetLength)),
	}
}

// Enqueue blocks until there is room, then appends req to the tail of the
// queue. It is safe to call concurrently from any number of producers.
func (q *Queue) Enqueue(ctx context.Context, req Request) error {
	if err := q.notFull.Wait(ctx); err != nil {
		return fmt.Errorf("squeue: enqueue: %w", err)
	}
	if err := q.mutex.Wait(ctx); err != nil {
		q.notFull.Post()
		return fmt.Errorf("squeue: enqueue: %w", err)
	}
	tail := atomic.LoadUint64(q.tailPtr)
	slot := q.slot(tail)
	req.encode(slot)
	atomic.StoreUint64(q.tailPtr, (tail+1)%q.capacity)
	atomic.AddUint64(q.lengthPtr, 1)
	q.mutex.Post()
	q.notEmpty.Post()
	return nil
}

// Dequeue blocks until a request is available, then removes and returns the
// request at the head of the queue. There must be exactly one consumer.
func (q *Queue) Dequeue(ctx context.Context) (Request, error) {
	if err := q.notEmpty.Wait(ctx); err != nil {
		return Request{}, fmt.Errorf("squeue: dequeue: %w", err)
	}
	if err := q.mutex.Wait(ctx); err != nil {
		q.notEmpty.Post()
		return Request{}, fmt.Errorf("squeue: dequeue: %w", err)
	}
	head := atomic.LoadUint64(q.headPtr)
	req := decode(q.slot(head))
	atomic.StoreUint64(q.headPtr, (head+1)%q.capacity)
	atomic.AddUint64(q.lengthPtr, ^uint64(0)) // length--
	q.mutex.Post()
	q.notFull.Post()
	return req, nil
}

// Length reports the current number of queued requests. It is advisory: it
// may be stale the instant it is returned under concurrent use.
func (q *Queue) Length() uint64 {
	return atomic.LoadUint64(q.lengthPtr)
}

// Capacity reports the fixed maximum number of requests the queue holds.
func (q *Queue) Capacity() uint64 {
	return q.capacity
}

// Apply iterates queued requests from head to tail, calling fn on each and
// stopping at the first non-zero return, which Apply then reports back to
// its caller. It is not synchronized against concurrent Enqueue/Dequeue, by
// design: it exists for debug inspection, not for code on the
// enqueue/dequeue path, so callers must tolerate a stale or torn read under
// concurrent mutation.
func (q *Queue) Apply(fn func(Request) int) int {
	length := atomic.LoadUint64(q.lengthPtr)
	head := atomic.LoadUint64(q.headPtr)
	for i := uint64(0); i < length; i++ {
		idx := (head + i) % q.capacity
		if r := fn(decode(q.slot(idx))); r != 0 {
			return r
		}
	}
	return 0
}

func (q *Queue) slot(i uint64) []byte {
	start := offsetSlots + int(i)*RequestSize
	return q.seg.Data[start : start+RequestSize]
}

// Close detaches from the queue without destroying it.
func (q *Queue) Close() error {
	return q.seg.Close()
}

// Dispose tears down the queue's backing segment. Only the daemon that
// created the queue should call Dispose, during shutdown.
func (q *Queue) Dispose() error {
	if !q.owner {
		return fmt.Errorf("squeue: Dispose called on a non-owning attachment")
	}
	return q.seg.Dispose()
}
