package prometheus

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestMetricsExporter_RecordMethods(t *testing.T) {
	reg := prom.NewRegistry()
	exporter, err := NewMetricsExporter("threadpool", reg, ExporterOptions{})
	if err != nil {
		t.Fatalf("NewMetricsExporter failed: %v", err)
	}

	exporter.RecordJobDuration("pool-a", 250*time.Millisecond)
	exporter.RecordJobPanic("pool-a", "panic")
	exporter.RecordQueueDepth("pool-a", 7)
	exporter.RecordJobRejected("pool-a", "shut down")

	panicTotal := testutil.ToFloat64(exporter.jobPanicTotal.WithLabelValues("pool-a"))
	if panicTotal != 1 {
		t.Fatalf("panic total = %v, want 1", panicTotal)
	}

	queueDepth := testutil.ToFloat64(exporter.queueDepth.WithLabelValues("pool-a"))
	if queueDepth != 7 {
		t.Fatalf("queue depth = %v, want 7", queueDepth)
	}

	rejected := testutil.ToFloat64(exporter.jobRejectedTotal.WithLabelValues("pool-a", "shut down"))
	if rejected != 1 {
		t.Fatalf("rejected total = %v, want 1", rejected)
	}

	histCount, err := histogramSampleCount(exporter.jobDurationSeconds.WithLabelValues("pool-a"))
	if err != nil {
		t.Fatalf("histogramSampleCount failed: %v", err)
	}
	if histCount != 1 {
		t.Fatalf("duration sample count = %d, want 1", histCount)
	}
}

func TestMetricsExporter_AlreadyRegisteredReuse(t *testing.T) {
	reg := prom.NewRegistry()
	first, err := NewMetricsExporter("threadpool", reg, ExporterOptions{})
	if err != nil {
		t.Fatalf("first NewMetricsExporter failed: %v", err)
	}
	second, err := NewMetricsExporter("threadpool", reg, ExporterOptions{})
	if err != nil {
		t.Fatalf("second NewMetricsExporter failed: %v", err)
	}

	first.RecordJobPanic("pool-a", nil)
	second.RecordJobPanic("pool-a", nil)

	got := testutil.ToFloat64(first.jobPanicTotal.WithLabelValues("pool-a"))
	if got != 2 {
		t.Fatalf("shared panic counter = %v, want 2", got)
	}
}

func TestMetricsExporter_EmptyLabelFallback(t *testing.T) {
	reg := prom.NewRegistry()
	exporter, err := NewMetricsExporter("threadpool", reg, ExporterOptions{})
	if err != nil {
		t.Fatalf("NewMetricsExporter failed: %v", err)
	}

	exporter.RecordJobPanic("", nil)

	got := testutil.ToFloat64(exporter.jobPanicTotal.WithLabelValues("unknown"))
	if got != 1 {
		t.Fatalf("fallback panic counter = %v, want 1", got)
	}
}

func histogramSampleCount(observer prom.Observer) (uint64, error) {
	collector, ok := observer.(prom.Collector)
	if !ok {
		return 0, nil
	}

	metricCh := make(chan prom.Metric, 1)
	collector.Collect(metricCh)
	close(metricCh)
	for metric := range metricCh {
		msg := &dto.Metric{}
		if err := metric.Write(msg); err != nil {
			return 0, err
		}
		if msg.Histogram != nil {
			return msg.Histogram.GetSampleCount(), nil
		}
	}
	return 0, nil
}
