package wlog

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/buntdb"
)

// Storage slots. The log is two parallel sequences persisted under their
// own keys; position i in ojt.days corresponds to position i in
// ojt.totalMinutes.
const (
	MinutesKey       = "ojt.totalMinutes"
	DaysKey          = "ojt.days"
	RequiredHoursKey = "ojt.requiredHours"
	LaunchedKey      = "ojt.launched"
)

type LogRepository interface {
	SaveLog(dates []Date, minutes []int) error
	GetLog() ([]Date, []int, error)
	SaveRequiredHours(hours float64) error
	GetRequiredHours() (float64, error)
	SaveLaunched() error
	GetLaunched() (bool, error)
}

func NewLogRepository(db *buntdb.DB) LogRepository {
	return &logRepository{db: db}
}

type logRepository struct {
	db *buntdb.DB
}

func (r *logRepository) SaveLog(dates []Date, minutes []int) error {
	ds, err := json.Marshal(dates)
	if err != nil {
		return err
	}
	ms, err := json.Marshal(minutes)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *buntdb.Tx) error {
		if _, _, err := tx.Set(DaysKey, string(ds), nil); err != nil {
			return err
		}
		_, _, err := tx.Set(MinutesKey, string(ms), nil)
		return err
	})
}

func (r *logRepository) GetLog() ([]Date, []int, error) {
	dates := []Date{}
	minutes := []int{}
	err := r.db.View(func(tx *buntdb.Tx) error {
		if err := getJSON(tx, DaysKey, &dates); err != nil {
			return err
		}
		return getJSON(tx, MinutesKey, &minutes)
	})
	if err != nil {
		return nil, nil, err
	}
	return dates, minutes, nil
}

func (r *logRepository) SaveRequiredHours(hours float64) error {
	bs, err := json.Marshal(hours)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(RequiredHoursKey, string(bs), nil)
		return err
	})
}

func (r *logRepository) GetRequiredHours() (float64, error) {
	var hours float64
	err := r.db.View(func(tx *buntdb.Tx) error {
		return getJSON(tx, RequiredHoursKey, &hours)
	})
	if err != nil {
		return 0, err
	}
	return hours, nil
}

func (r *logRepository) SaveLaunched() error {
	return r.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(LaunchedKey, "true", nil)
		return err
	})
}

func (r *logRepository) GetLaunched() (bool, error) {
	var launched bool
	err := r.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(LaunchedKey)
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		launched = v == "true"
		return nil
	})
	if err != nil {
		return false, err
	}
	return launched, nil
}

// getJSON decodes the value at key into dest, leaving dest untouched when
// the key is absent.
func getJSON(tx *buntdb.Tx, key string, dest any) error {
	v, err := tx.Get(key)
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	return json.Unmarshal([]byte(v), dest)
}
