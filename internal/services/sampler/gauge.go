package sampler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"

	"trackr/internal/domain"
)

const (
	grpcScheme      = "grpc://"
	acceleratorPort = ":8470"
	monitorPort     = ":8466"
	reportPrefix    = "Utilization "
	monitorPath     = "/monitor"
)

// CPUGauge samples host CPU utilization across all cores.
func CPUGauge() Gauge {
	return GaugeFunc(func(ctx context.Context) (float64, error) {
		percents, err := cpu.PercentWithContext(ctx, 0, false)
		if err != nil {
			return 0, fmt.Errorf("failed to read cpu utilization: %w", err)
		}
		if len(percents) == 0 {
			return 0, fmt.Errorf("no cpu utilization reported")
		}
		return percents[0], nil
	})
}

// MonitorGauge reads a text utilization report from an accelerator monitor
// service.
func MonitorGauge(httpAdapter domain.HTTPAdapter, serviceAddr string) Gauge {
	url := "http://" + NormalizeServiceAddr(serviceAddr) + monitorPath

	return GaugeFunc(func(ctx context.Context) (float64, error) {
		resp, err := httpAdapter.Get(ctx, url)
		if err != nil {
			return 0, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return 0, fmt.Errorf("monitor returned status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return 0, fmt.Errorf("failed to read monitor report: %w", err)
		}
		return ParseUtilization(string(body))
	})
}

// NormalizeServiceAddr turns an accelerator address into its monitor
// address: the grpc:// scheme is dropped and port 8470 becomes 8466.
func NormalizeServiceAddr(addr string) string {
	addr = strings.TrimPrefix(strings.TrimSpace(addr), grpcScheme)
	if strings.HasSuffix(addr, acceleratorPort) {
		addr = strings.TrimSuffix(addr, acceleratorPort) + monitorPort
	}
	return addr
}

// ParseUtilization extracts the percentage from the first
// "Utilization ...: NN%" line of a report.
func ParseUtilization(report string) (float64, error) {
	for _, line := range strings.Split(report, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, reportPrefix) {
			continue
		}

		_, value, found := strings.Cut(line, ": ")
		if !found {
			continue
		}

		percent, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(value), "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("malformed utilization %q: %w", value, err)
		}
		return percent, nil
	}
	return 0, fmt.Errorf("no utilization line in report")
}
