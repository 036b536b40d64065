// Package metrics emits standardised fieldops metrics through a statsd.Sink.
package metrics

import (
	"strconv"
	"time"

	obserrors "github.com/openmf/fieldops/internal/observability/errors"
	"github.com/openmf/fieldops/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultEmpty   = "empty"
	ResultStale   = "stale"
)

// GatewayCall describes one request to the remote API.
type GatewayCall struct {
	Op       string
	Method   string
	Status   int
	Duration time.Duration
	Err      error
}

// EmitGatewayCall emits a counter and a latency timing for a gateway request.
func EmitGatewayCall(sink statsd.Sink, in GatewayCall) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"op":     in.Op,
		"method": in.Method,
		"result": ResultSuccess,
	}
	if in.Status > 0 {
		tags["status"] = strconv.Itoa(in.Status)
	}
	if in.Err != nil {
		tags["result"] = ResultError
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("gateway.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("gateway.latency", in.Duration, CloneTags(tags))
	}
}

// ListLoad describes how a presenter applied or dropped a page result.
type ListLoad struct {
	Screen string
	Offset int
	Items  int
	Result string
}

// EmitListLoad counts page results by outcome.
func EmitListLoad(sink statsd.Sink, in ListLoad) {
	if sink == nil {
		return
	}
	kind := "next"
	if in.Offset == 0 {
		kind = "first"
	}
	tags := map[string]string{"screen": in.Screen, "page": kind, "result": in.Result}
	sink.Count("list.load", 1, tags)
	if in.Result == ResultSuccess {
		sink.Gauge("list.page_items", float64(in.Items), CloneTags(tags))
	}
}

// SyncResult describes the outcome of synchronising one entity into the local store.
type SyncResult struct {
	EntityType string
	Duration   time.Duration
	Err        error
}

// EmitSync counts synchronised entities by type and outcome.
func EmitSync(sink statsd.Sink, in SyncResult) {
	if sink == nil {
		return
	}
	tags := map[string]string{"entity": in.EntityType, "result": ResultSuccess}
	if in.Err != nil {
		tags["result"] = ResultError
		tags["error_class"] = obserrors.Classify(in.Err)
	}
	sink.Count("sync.entity", 1, tags)
	if in.Duration > 0 {
		sink.Timing("sync.duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
