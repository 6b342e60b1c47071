package httpmetrics

import (
	"net/http"
	"strconv"
	"time"
)

// Recorder интерфейс приёмника метрик исходящих запросов
type Recorder interface {
	ObserveUpstreamRequest(upstream, method, status string, duration time.Duration)
}

// Transport http.RoundTripper, записывающий метрики запросов к внешнему сервису
// Оборачивает базовый транспорт, не меняя поведения запросов
type Transport struct {
	upstream string
	base     http.RoundTripper
	recorder Recorder
}

// Wrap оборачивает транспорт HTTP клиента метриками
// Если base == nil, используется http.DefaultTransport
func Wrap(upstream string, base http.RoundTripper, recorder Recorder) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		upstream: upstream,
		base:     base,
		recorder: recorder,
	}
}

// RoundTrip выполняет запрос и фиксирует метрики
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.recorder.ObserveUpstreamRequest(t.upstream, req.Method, status, time.Since(start))

	return resp, err
}
