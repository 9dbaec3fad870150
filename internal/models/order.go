package models

// Customer places orders
type Customer struct {
	ID      int64   `json:"id" db:"id"`
	Name    *string `json:"nombre" db:"nombre"`
	Phone   *string `json:"telefono" db:"telefono"`
	Address *string `json:"direccion" db:"direccion"`
}

// Order is a quantity of one dish requested by one customer.
// Status is free-form text; no transitions are enforced.
type Order struct {
	ID         int64   `json:"id" db:"id"`
	CustomerID *Int    `json:"cliente_id" db:"cliente_id"`
	DishID     *Int    `json:"platillo_id" db:"platillo_id"`
	Quantity   *Int    `json:"cantidad" db:"cantidad"`
	Status     *string `json:"estado" db:"estado"`
}

// Payment records an amount paid against an order
type Payment struct {
	ID          int64  `json:"id" db:"id"`
	OrderID     *Int   `json:"orden_id" db:"orden_id"`
	Amount      *Money `json:"monto" db:"monto"`
	PaymentDate Date   `json:"fecha_pago" db:"fecha_pago"`
}
