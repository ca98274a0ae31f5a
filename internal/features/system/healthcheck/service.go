package system_healthcheck

import (
	"fmt"

	"codetutor/internal/storage"
	cache_utils "codetutor/internal/util/cache"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct{}

type SystemStats struct {
	MemoryTotalBytes  uint64  `json:"memoryTotalBytes"`
	MemoryUsedBytes   uint64  `json:"memoryUsedBytes"`
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	DiskTotalBytes    uint64  `json:"diskTotalBytes"`
	DiskUsedBytes     uint64  `json:"diskUsedBytes"`
	DiskUsedPercent   float64 `json:"diskUsedPercent"`
}

func (s *HealthcheckService) IsAvailable() error {
	// Check database connection
	if err := storage.GetDb().Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database check failed: %w", err)
	}

	// Check Valkey cache connection
	if err := s.testCacheConnection(); err != nil {
		return fmt.Errorf("cache check failed: %w", err)
	}

	return nil
}

func (s *HealthcheckService) GetSystemStats() (*SystemStats, error) {
	memory, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}

	diskUsage, err := disk.Usage("/")
	if err != nil {
		return nil, fmt.Errorf("failed to read disk stats: %w", err)
	}

	return &SystemStats{
		MemoryTotalBytes:  memory.Total,
		MemoryUsedBytes:   memory.Used,
		MemoryUsedPercent: memory.UsedPercent,
		DiskTotalBytes:    diskUsage.Total,
		DiskUsedBytes:     diskUsage.Used,
		DiskUsedPercent:   diskUsage.UsedPercent,
	}, nil
}

func (s *HealthcheckService) testCacheConnection() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cache connection test panicked: %v", r)
		}
	}()

	cache_utils.TestCacheConnection()
	return nil
}
