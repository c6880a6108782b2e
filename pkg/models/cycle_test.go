package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleRecordFeature(t *testing.T) {
	var values [SensorCount]float64
	for i := range SensorCount {
		values[i] = float64(i+1) * 10
	}
	record := CycleRecord{
		Settings: Settings{Setting1: 0.1, Setting2: 0.2, Setting3: 100},
		Sensors:  SensorsFromValues(values),
	}

	cases := map[string]float64{
		"s1":       10,
		"s2":       20,
		"s11":      110,
		"s21":      210,
		"setting1": 0.1,
		"setting3": 100,
	}
	for name, want := range cases {
		got, ok := record.Feature(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	for _, name := range []string{"", "s", "s0", "s22", "s02x", "x2", "temperature", "s100"} {
		_, ok := record.Feature(name)
		assert.False(t, ok, "expected %q to be rejected", name)
	}
}

func TestSensorsRoundTripOrder(t *testing.T) {
	s := Sensors{S2: 642.5, S21: 23.4}
	v := s.Values()
	assert.Equal(t, 642.5, v[1])
	assert.Equal(t, 23.4, v[20])
	assert.Equal(t, s, SensorsFromValues(v))
}

func TestStatusAndRoleValid(t *testing.T) {
	assert.True(t, EngineStatusRetired.Valid())
	assert.False(t, EngineStatus("scrapped").Valid())
	assert.True(t, RoleEngineer.Valid())
	assert.False(t, Role("pilot").Valid())
}
