package database

// Menu queries
const (
	ListMenuItemsSQL = `
		SELECT id, name, price, created_at, updated_at
		FROM menu_items
		ORDER BY name ASC`

	InsertMenuItemSQL = `
		INSERT INTO menu_items (name, price)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	CountMenuItemsByIDSQL = `
		SELECT COUNT(*) FROM menu_items WHERE id = ANY($1)`
)

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (customer_name, phone_number, status, paid, payment_mode)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	InsertOrderItemSQL = `
		INSERT INTO order_items (order_id, menu_item_id, quantity)
		VALUES ($1, $2, $3)`

	GetOrderSQL = `
		SELECT id, customer_name, phone_number, status, paid, payment_mode, created_at, updated_at
		FROM orders
		WHERE id = $1`

	ListOrdersSQL = `
		SELECT id, customer_name, phone_number, status, paid, payment_mode, created_at, updated_at
		FROM orders
		ORDER BY created_at ASC`

	// Left join so a dangling line surfaces as NULL menu columns instead of
	// silently disappearing from the result set.
	GetOrderLinesSQL = `
		SELECT oi.id, oi.order_id, oi.quantity, m.id, m.name, m.price
		FROM order_items oi
		LEFT JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id ASC`

	UpdateOrderStatusSQL = `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, status`

	UpdateOrderPaymentSQL = `
		UPDATE orders SET paid = $1, payment_mode = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, paid, payment_mode`
)
