// cmd/seedempresa/main.go — Crea una empresa de demo con un vendedor y los
// tipos de pago por defecto, y genera un par de claves VAPID si faltan.
// Uso: go run ./cmd/seedempresa
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/parinohernan/aqua-delivery-sub000/internal/infra"
	"github.com/parinohernan/aqua-delivery-sub000/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "aqua:aqua@tcp(localhost:3306)/aquadelivery?parseTime=true&charset=utf8mb4"
	}
	codigo := "DEMO"
	nombre := "Agua Demo SRL"
	telegramID := "123456789"
	vendedor := "Vendedor Demo"
	pin := "1234"

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	ctx := context.Background()

	var empresa model.Empresa
	err = db.WithContext(ctx).Where("codigo = ?", codigo).First(&empresa).Error
	if err == gorm.ErrRecordNotFound {
		empresa = model.Empresa{ID: uuid.New(), Codigo: codigo, Nombre: nombre}
		if err := db.WithContext(ctx).Create(&empresa).Error; err != nil {
			log.Fatalf("crear empresa: %v", err)
		}
	} else if err != nil {
		log.Fatalf("buscar empresa: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}
	result := db.WithContext(ctx).Exec(`
		INSERT INTO vendedores (id, empresa_id, telegram_id, nombre, pin_hash, activo, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, true, NOW(), NOW())
		ON DUPLICATE KEY UPDATE
			nombre = VALUES(nombre),
			pin_hash = VALUES(pin_hash),
			activo = true
	`, uuid.NewString(), empresa.ID, telegramID, vendedor, string(hash))
	if result.Error != nil {
		log.Fatalf("crear vendedor: %v", result.Error)
	}

	// Default payment types: Efectivo cuts receipts, Cta Cte posts to saldo.
	tipos := []model.TipoPago{
		{ID: uuid.New(), EmpresaID: empresa.ID, Nombre: "Efectivo", AplicaSaldo: model.BitBool(false)},
		{ID: uuid.New(), EmpresaID: empresa.ID, Nombre: "Cta Cte", AplicaSaldo: model.BitBool(true)},
	}
	for _, t := range tipos {
		var count int64
		db.WithContext(ctx).Model(&model.TipoPago{}).
			Where("empresa_id = ? AND nombre = ?", empresa.ID, t.Nombre).Count(&count)
		if count == 0 {
			if err := db.WithContext(ctx).Create(&t).Error; err != nil {
				log.Fatalf("crear tipo de pago %s: %v", t.Nombre, err)
			}
		}
	}

	fmt.Printf("Empresa '%s' (codigo %s) lista. Vendedor '%s' con PIN '%s'.\n", nombre, codigo, telegramID, pin)

	if os.Getenv("VAPID_PUBLIC_KEY") == "" {
		priv, pub, err := infra.GenerateVAPIDKeys()
		if err != nil {
			log.Fatalf("generar claves VAPID: %v", err)
		}
		fmt.Println("Claves VAPID nuevas (agregar al .env):")
		fmt.Printf("VAPID_PUBLIC_KEY=%s\nVAPID_PRIVATE_KEY=%s\n", pub, priv)
	}
}
