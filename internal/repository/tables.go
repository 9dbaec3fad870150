package repository

import "github.com/Lixing-Zhang/restaurant-api/internal/models"

var CategoryTable = Table[models.Category]{
	Name:    "categorias",
	Columns: []string{"id", "nombre", "descripcion"},
	Insert:  []string{"nombre", "descripcion"},
	SetID:   func(c *models.Category, id int64) { c.ID = id },
}

var DishTable = Table[models.Dish]{
	Name:    "platillos",
	Columns: []string{"id", "nombre", "descripcion", "precio", "categoria_id"},
	Insert:  []string{"nombre", "descripcion", "precio", "categoria_id"},
	SetID:   func(d *models.Dish, id int64) { d.ID = id },
}

var IngredientTable = Table[models.Ingredient]{
	Name:    "ingredientes",
	Columns: []string{"id", "nombre", "descripcion"},
	Insert:  []string{"nombre", "descripcion"},
	SetID:   func(i *models.Ingredient, id int64) { i.ID = id },
}

var DishIngredientTable = Table[models.DishIngredient]{
	Name:    "platillos_ingredientes",
	Columns: []string{"platillo_id", "ingrediente_id"},
	Insert:  []string{"platillo_id", "ingrediente_id"},
}

var CustomerTable = Table[models.Customer]{
	Name:    "clientes",
	Columns: []string{"id", "nombre", "telefono", "direccion"},
	Insert:  []string{"nombre", "telefono", "direccion"},
	SetID:   func(c *models.Customer, id int64) { c.ID = id },
}

var OrderTable = Table[models.Order]{
	Name:    "ordenes",
	Columns: []string{"id", "cliente_id", "platillo_id", "cantidad", "estado"},
	Insert:  []string{"cliente_id", "platillo_id", "cantidad", "estado"},
	SetID:   func(o *models.Order, id int64) { o.ID = id },
}

var PaymentTable = Table[models.Payment]{
	Name:    "pagos",
	Columns: []string{"id", "orden_id", "monto", "fecha_pago"},
	Insert:  []string{"orden_id", "monto", "fecha_pago"},
	SetID:   func(p *models.Payment, id int64) { p.ID = id },
}
