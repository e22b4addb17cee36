package xplog

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/xplog/pkg/observability/xrotate"
)

// 指标名称常量
const (
	// metricNameLinesTotal 写入行数计数器
	metricNameLinesTotal = "xplog.lines.total"
	// metricNameRotationsTotal 轮转次数计数器
	metricNameRotationsTotal = "xplog.rotations.total"
	// metricNameErrorsTotal 失败次数计数器
	metricNameErrorsTotal = "xplog.errors.total"
)

// 失败发生的操作
const (
	opWrite  = "write"
	opRotate = "rotate"
)

// metrics Writer 指标收集器，nil 表示不收集
type metrics struct {
	linesTotal     metric.Int64Counter
	rotationsTotal metric.Int64Counter
	errorsTotal    metric.Int64Counter
}

// newMetrics 创建指标收集器
// 如果 meterProvider 为 nil，返回 nil（不收集指标）
func newMetrics(meterProvider metric.MeterProvider) (*metrics, error) {
	if meterProvider == nil {
		return nil, nil
	}

	meter := meterProvider.Meter("xplog",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	linesTotal, err := meter.Int64Counter(
		metricNameLinesTotal,
		metric.WithDescription("写入的日志行数"),
		metric.WithUnit("{line}"),
	)
	if err != nil {
		return nil, err
	}

	rotationsTotal, err := meter.Int64Counter(
		metricNameRotationsTotal,
		metric.WithDescription("日志文件轮转次数"),
		metric.WithUnit("{rotation}"),
	)
	if err != nil {
		return nil, err
	}

	errorsTotal, err := meter.Int64Counter(
		metricNameErrorsTotal,
		metric.WithDescription("写入或轮转失败次数"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	return &metrics{
		linesTotal:     linesTotal,
		rotationsTotal: rotationsTotal,
		errorsTotal:    errorsTotal,
	}, nil
}

func (m *metrics) recordLine(level Level) {
	if m == nil {
		return
	}
	m.linesTotal.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("level", level.String())))
}

func (m *metrics) recordRotation(mode RotationMode, trigger xrotate.Trigger) {
	if m == nil {
		return
	}
	m.rotationsTotal.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("mode", string(mode)),
		attribute.String("trigger", string(trigger)),
	))
}

func (m *metrics) recordError(op string) {
	if m == nil {
		return
	}
	m.errorsTotal.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("op", op)))
}
