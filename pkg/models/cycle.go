package models

import "time"

type Settings struct {
	Setting1 float64 `gorm:"column:setting1" json:"setting1"`
	Setting2 float64 `gorm:"column:setting2" json:"setting2"`
	Setting3 float64 `gorm:"column:setting3" json:"setting3"`
}

// Sensors is the fixed shape of the 21 sensor channels of one cycle.
type Sensors struct {
	S1  float64 `gorm:"column:s1" json:"s1"`
	S2  float64 `gorm:"column:s2" json:"s2"`
	S3  float64 `gorm:"column:s3" json:"s3"`
	S4  float64 `gorm:"column:s4" json:"s4"`
	S5  float64 `gorm:"column:s5" json:"s5"`
	S6  float64 `gorm:"column:s6" json:"s6"`
	S7  float64 `gorm:"column:s7" json:"s7"`
	S8  float64 `gorm:"column:s8" json:"s8"`
	S9  float64 `gorm:"column:s9" json:"s9"`
	S10 float64 `gorm:"column:s10" json:"s10"`
	S11 float64 `gorm:"column:s11" json:"s11"`
	S12 float64 `gorm:"column:s12" json:"s12"`
	S13 float64 `gorm:"column:s13" json:"s13"`
	S14 float64 `gorm:"column:s14" json:"s14"`
	S15 float64 `gorm:"column:s15" json:"s15"`
	S16 float64 `gorm:"column:s16" json:"s16"`
	S17 float64 `gorm:"column:s17" json:"s17"`
	S18 float64 `gorm:"column:s18" json:"s18"`
	S19 float64 `gorm:"column:s19" json:"s19"`
	S20 float64 `gorm:"column:s20" json:"s20"`
	S21 float64 `gorm:"column:s21" json:"s21"`
}

const SensorCount = 21

// Values returns s1..s21 in channel order.
func (s Sensors) Values() [SensorCount]float64 {
	return [SensorCount]float64{
		s.S1, s.S2, s.S3, s.S4, s.S5, s.S6, s.S7, s.S8, s.S9, s.S10, s.S11,
		s.S12, s.S13, s.S14, s.S15, s.S16, s.S17, s.S18, s.S19, s.S20, s.S21,
	}
}

func SensorsFromValues(v [SensorCount]float64) Sensors {
	return Sensors{
		S1: v[0], S2: v[1], S3: v[2], S4: v[3], S5: v[4], S6: v[5], S7: v[6],
		S8: v[7], S9: v[8], S10: v[9], S11: v[10], S12: v[11], S13: v[12], S14: v[13],
		S15: v[14], S16: v[15], S17: v[16], S18: v[17], S19: v[18], S20: v[19], S21: v[20],
	}
}

type CycleRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EngineID  uint      `gorm:"not null;uniqueIndex:idx_engine_cycle" json:"engine_id"`
	Cycle     int       `gorm:"not null;uniqueIndex:idx_engine_cycle" json:"cycle"`
	Timestamp time.Time `json:"timestamp"`

	Settings Settings `gorm:"embedded" json:"settings"`
	Sensors  Sensors  `gorm:"embedded" json:"sensor_data"`

	// prediction outputs, attached by scoring only
	RUL                *float64 `gorm:"column:rul" json:"rul"`
	FailureProbability *float64 `json:"failure_probability"`
	AnomalyScore       *float64 `json:"anomaly_score"`
}

// Feature resolves a named scalar of the record: s1..s21 or setting1..setting3.
func (c *CycleRecord) Feature(name string) (float64, bool) {
	switch name {
	case "setting1":
		return c.Settings.Setting1, true
	case "setting2":
		return c.Settings.Setting2, true
	case "setting3":
		return c.Settings.Setting3, true
	}

	idx, ok := SensorIndex(name)
	if !ok {
		return 0, false
	}
	return c.Sensors.Values()[idx], true
}

// SensorIndex maps "s1".."s21" to 0..20.
func SensorIndex(name string) (int, bool) {
	if len(name) < 2 || len(name) > 3 || name[0] != 's' {
		return 0, false
	}
	n := 0
	for _, ch := range name[1:] {
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	if n < 1 || n > SensorCount {
		return 0, false
	}
	return n - 1, true
}

func IsFeatureName(name string) bool {
	var c CycleRecord
	_, ok := c.Feature(name)
	return ok
}
