package db

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
	_ "liyu1981.xyz/engine-maintenance-service/pkg/testing"

	"gorm.io/gorm"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func indexExists(db *gorm.DB, indexName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='index' AND name=?`, indexName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	dialector := UseMemorySqliteDialector()

	instance := GetInstance(dialector)
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}

	var tables = []string{"users", "engines", "cycle_records", "alerts", "maintenance_records"}
	for _, table := range tables {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}

	for _, index := range []string{"idx_engine_cycle", "idx_alerts_open_per_engine"} {
		if !indexExists(instance.Conn, index) {
			t.Errorf("Expected index %q to exist after migration", index)
		}
	}
}

func TestSingletonConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	const goroutineCount = 20

	var wg sync.WaitGroup
	instances := make(chan *DB, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instance := GetInstance(UseMemorySqliteDialector())
			instances <- instance
		}()
	}

	wg.Wait()
	close(instances)

	var first *DB
	for inst := range instances {
		if first == nil {
			first = inst
			continue
		}
		if inst != first {
			t.Error("Expected all instances to be the same (singleton), but found different ones")
		}
	}
}

func TestIsolatedMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	a, err := Open(UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)
	b, err := Open(UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)

	require.NoError(t, a.Conn.Create(&models.Engine{SerialNumber: "ESN-A"}).Error)

	var count int64
	require.NoError(t, b.Conn.Model(&models.Engine{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestConstraints(t *testing.T) {
	common.SetTestLoggerNop()

	instance, err := Open(UseIsolatedMemorySqliteDialector())
	require.NoError(t, err)
	conn := instance.Conn

	engine := models.Engine{SerialNumber: "ESN-C"}
	require.NoError(t, conn.Create(&engine).Error)

	{
		// (engine_id, cycle) is unique
		require.NoError(t, conn.Create(&models.CycleRecord{EngineID: engine.ID, Cycle: 1}).Error)
		err := conn.Create(&models.CycleRecord{EngineID: engine.ID, Cycle: 1}).Error
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	}

	{
		// cycles need an existing engine
		err := conn.Create(&models.CycleRecord{EngineID: engine.ID + 100, Cycle: 1}).Error
		assert.Error(t, err)
	}

	{
		// only one open alert per engine and type, resolved ones do not count
		open := models.Alert{EngineID: engine.ID, Type: models.AlertTypeMaintenanceDue}
		require.NoError(t, conn.Create(&open).Error)
		err := conn.Create(&models.Alert{EngineID: engine.ID, Type: models.AlertTypeMaintenanceDue}).Error
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		require.NoError(t, conn.Model(&open).Update("resolved", true).Error)
		assert.NoError(t, conn.Create(&models.Alert{EngineID: engine.ID, Type: models.AlertTypeMaintenanceDue}).Error)
	}
}

func TestUseDialector(t *testing.T) {
	{
		d, err := UseDialector("memory", "")
		require.NoError(t, err)
		assert.Equal(t, "sqlite", d.Name())
	}

	{
		d, err := UseDialector("mysql", "root:secret@tcp(localhost:3306)/engine_maintenance")
		require.NoError(t, err)
		assert.Equal(t, "mysql", d.Name())
	}

	{
		_, err := UseDialector("mysql", "not a dsn")
		assert.ErrorContains(t, err, "invalid mysql dsn")
	}

	{
		_, err := UseDialector("postgres", "")
		assert.Error(t, err)
	}

	{
		_, err := UseDialector("oracle", "")
		assert.ErrorContains(t, err, common.EnvKeyDBType)
	}
}
