// Command gen writes type-safe query helpers for the foodies models.
package main

import (
	"foodies/internal/infra/persistence/model"

	"gorm.io/gen"
)

const queryOutPath = "./internal/infra/persistence/postgres/query"

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: queryOutPath,
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
