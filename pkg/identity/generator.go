package identity

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Generator returns a fresh opaque record identifier on every call.
// Implementations must be safe for concurrent use.
type Generator func() string

// UUID returns a Generator producing random (version 4) UUID strings.
func UUID() Generator {
	return func() string {
		return uuid.NewString()
	}
}

// ObjectID returns a Generator producing 24 character hex identifiers made of
// a 4 byte timestamp, a 5 byte per-generator random value and a 3 byte
// counter, matching the ids found in exported configuration files.
func ObjectID() Generator {
	var (
		once    sync.Once
		machine [5]byte
		counter atomic.Uint32
	)
	return func() string {
		once.Do(func() {
			var seed [8]byte
			if _, err := rand.Read(seed[:]); err != nil {
				binary.BigEndian.PutUint64(seed[:], uint64(time.Now().UnixNano()))
			}
			copy(machine[:], seed[:5])
			counter.Store(binary.BigEndian.Uint32(seed[4:]) & 0x00ffffff)
		})

		var id [12]byte
		binary.BigEndian.PutUint32(id[0:4], uint32(time.Now().Unix()))
		copy(id[4:9], machine[:])
		next := counter.Add(1)
		id[9] = byte(next >> 16)
		id[10] = byte(next >> 8)
		id[11] = byte(next)
		return hex.EncodeToString(id[:])
	}
}

// Sequence returns a deterministic Generator yielding prefix-1, prefix-2, ...
// Intended for tests and reproducible exports.
func Sequence(prefix string) Generator {
	var n atomic.Uint64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
