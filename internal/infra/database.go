package infra

import (
	"time"

	"github.com/parinohernan/aqua-delivery-sub000/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection over go-sql-driver/mysql and runs
// AutoMigrate. The underlying database/sql pool is the only resource pool in
// the system: it is explicitly sized here and passed around as a handle —
// requests beyond maxOpen queue on the pool until a connection frees up.
func NewDatabase(dsn string, maxOpen, maxIdle int) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.Empresa{},
		&model.Vendedor{},
		&model.Zona{},
		&model.Cliente{},
		&model.Producto{},
		&model.TipoPago{},
		&model.Pedido{},
		&model.PedidoItem{},
		&model.Pago{},
		&model.PushSuscripcion{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
