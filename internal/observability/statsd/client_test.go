package statsd

import (
	"net"
	"strings"
	"testing"
	"time"
)

func TestLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		metric string
		global map[string]string
		local  map[string]string
		want   string
	}{
		{name: "bare", metric: "gateway.call", want: "gateway.call:1|c"},
		{name: "prefixed", prefix: "fieldops", metric: "gateway.call", want: "fieldops.gateway.call:1|c"},
		{name: "normalised", metric: " list/load..page ", want: "list_load.page:1|c"},
		{name: "empty name", metric: "  ", want: ""},
		{
			name:   "local tags override global",
			metric: "gateway.call",
			global: map[string]string{"env": "prod", " app ": " fieldops "},
			local:  map[string]string{"env": "field", "": "ignored", "result": "success"},
			want:   "gateway.call:1|c|#app:fieldops,env:field,result:success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Line(tt.prefix, tt.metric, "1", "c", tt.global, tt.local); got != tt.want {
				t.Fatalf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClientDisabled(t *testing.T) {
	t.Parallel()

	c, err := NewClient(Config{Enabled: false, Address: "127.0.0.1:8125"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.Enabled() {
		t.Fatal("disabled client reports enabled")
	}
	c.Count("ignored", 1, nil)
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var nilClient *Client
	nilClient.Count("ignored", 1, nil)
	if nilClient.Enabled() {
		t.Fatal("nil client reports enabled")
	}
}

func TestClientWritesUDP(t *testing.T) {
	t.Parallel()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("udp listen unavailable: %v", err)
	}
	defer pc.Close()

	c, err := NewClient(Config{
		Enabled:    true,
		Address:    pc.LocalAddr().String(),
		Prefix:     "fieldops.",
		GlobalTags: map[string]string{"env": "test"},
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer c.Close()

	c.Timing("gateway.latency", 1500*time.Microsecond, map[string]string{"op": "list_centers"})

	buf := make([]byte, 512)
	_ = pc.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	got := string(buf[:n])
	want := "fieldops.gateway.latency:1.5|ms|#env:test,op:list_centers"
	if !strings.EqualFold(got, want) {
		t.Fatalf("payload = %q, want %q", got, want)
	}
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.Count("sync.entity", 2, map[string]string{"result": "success"})
	r.Count("sync.entity", 1, nil)
	r.Timing("sync.duration", time.Second, nil)
	r.Gauge("list.size", 3, nil)

	if got := r.CountOf("sync.entity"); got != 3 {
		t.Fatalf("CountOf = %d, want 3", got)
	}
	if got := r.TimingsOf("sync.duration"); got != 1 {
		t.Fatalf("TimingsOf = %d, want 1", got)
	}
	lines := r.Lines()
	if len(lines) != 4 || lines[0] != "sync.entity:2|c|#result:success" {
		t.Fatalf("unexpected lines %v", lines)
	}
}
