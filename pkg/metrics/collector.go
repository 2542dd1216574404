package metrics

import (
	"time"

	"github.com/cuemby/ledgerd/pkg/blockstore"
	"github.com/cuemby/ledgerd/pkg/forwarding"
)

// Collector polls the reader and the forwarding service on an interval
// and republishes their state as gauges.
type Collector struct {
	reader  *blockstore.Reader
	service *forwarding.Service
	stopCh  chan struct{}
}

// NewCollector builds a collector over reader and service. Either may be
// nil if that subsystem is not running in this process.
func NewCollector(reader *blockstore.Reader, service *forwarding.Service) *Collector {
	return &Collector{
		reader:  reader,
		service: service,
		stopCh:  make(chan struct{}),
	}
}

// Start begins polling on a 15 second interval, matching the teacher's
// collection cadence.
func (c *Collector) Start() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop halts polling.
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	if c.reader != nil {
		MaxRoot.Set(float64(c.reader.MaxRoot()))
		LowestCleanupSlot.Set(float64(c.reader.LowestCleanupSlot()))
	}
	if c.service != nil {
		PendingPoolSize.Set(float64(c.service.PendingCount()))
	}
}
