package metrics

import (
	"time"

	"gorm.io/gorm"
)

const startedKey = "metrics:started"

type gormPlugin struct {
	m *Metrics
}

// GormPlugin returns a plugin that records every statement run through the db.
func (m *Metrics) GormPlugin() gorm.Plugin {
	return &gormPlugin{m: m}
}

func (p *gormPlugin) Name() string {
	return "dicers:metrics"
}

func (p *gormPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()

	if err := cb.Create().Before("gorm:create").Register("metrics:before_create", p.before); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("metrics:after_create", p.after("create")); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("metrics:before_query", p.before); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("metrics:after_query", p.after("query")); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("metrics:before_update", p.before); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("metrics:after_update", p.after("update")); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("metrics:before_delete", p.before); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("metrics:after_delete", p.after("delete")); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register("metrics:before_row", p.before); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register("metrics:after_row", p.after("row")); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("metrics:before_raw", p.before); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register("metrics:after_raw", p.after("raw"))
}

func (p *gormPlugin) before(db *gorm.DB) {
	db.InstanceSet(startedKey, time.Now())
}

func (p *gormPlugin) after(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		var started time.Time
		if v, ok := db.InstanceGet(startedKey); ok {
			started, _ = v.(time.Time)
		}
		p.m.observe(db.Statement.Table, operation, started, db.Error)
	}
}
