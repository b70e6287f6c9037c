// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/messagebus"
	"github.com/bitmark-inc/wramd/wram"
)

// StatusFunc - reads the committed contract state
type StatusFunc func() (wram.Status, error)

// Recorder - background process draining the receipt queue
type Recorder struct {
	log        *logger.L
	queue      *messagebus.Queue
	collectors *Collectors
	status     StatusFunc
}

// NewRecorder - status may be nil, then gauges are not updated
func NewRecorder(queue *messagebus.Queue, collectors *Collectors, status StatusFunc) *Recorder {
	return &Recorder{
		log:        logger.New("metrics"),
		queue:      queue,
		collectors: collectors,
		status:     status,
	}
}

// Run - the background loop
func (r *Recorder) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log
	log.Info("starting…")

	r.refresh()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-r.queue.Chan():
			r.process(item)
		}
	}

	log.Info("stopped")
}

func (r *Recorder) process(item messagebus.Message) {
	if "receipt" != item.Command || 1 != len(item.Parameters) {
		r.log.Warnf("unexpected message: %q", item.Command)
		return
	}
	receipt, ok := item.Parameters[0].(*host.Receipt)
	if !ok {
		r.log.Warnf("unexpected receipt type: %T", item.Parameters[0])
		return
	}

	r.log.Debugf("receipt: %s  action: %s  error: %q", receipt.ID, receipt.Action, receipt.Error)
	r.collectors.Record(receipt)
	if receipt.Committed() {
		r.refresh()
	}
}

func (r *Recorder) refresh() {
	if nil == r.status {
		return
	}
	status, err := r.status()
	if nil != err {
		r.log.Errorf("status error: %s", err)
		return
	}
	r.collectors.Observe(status)
}
