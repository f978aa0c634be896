package system_healthcheck

import (
	"taskhub/internal/storage"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct{}

type HealthStatus struct {
	Status            string  `json:"status"`
	DatabaseReachable bool    `json:"databaseReachable"`
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	DiskUsedPercent   float64 `json:"diskUsedPercent"`
	DiskFreeBytes     uint64  `json:"diskFreeBytes"`
}

// GetHealth reports liveness. Host probe failures degrade the report but
// never fail the endpoint; only an unreachable database flips the status.
func (s *HealthcheckService) GetHealth() *HealthStatus {
	health := &HealthStatus{
		Status:            "ok",
		DatabaseReachable: s.isDatabaseReachable(),
	}

	if !health.DatabaseReachable {
		health.Status = "degraded"
	}

	if memory, err := mem.VirtualMemory(); err == nil {
		health.MemoryUsedPercent = memory.UsedPercent
	}

	if usage, err := disk.Usage("/"); err == nil {
		health.DiskUsedPercent = usage.UsedPercent
		health.DiskFreeBytes = usage.Free
	}

	return health
}

func (s *HealthcheckService) isDatabaseReachable() bool {
	db, err := storage.GetDb().DB()
	if err != nil {
		return false
	}

	return db.Ping() == nil
}
