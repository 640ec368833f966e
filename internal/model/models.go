package model

// Models lists every persisted type, in migration order.
func Models() []interface{} {
	return []interface{}{
		&Privilege{},
		&Role{},
		&User{},
		&Setting{},
		&Product{},
		&Supplier{},
		&Client{},
		&Purchase{},
		&PurchaseItem{},
		&Sale{},
		&SaleItem{},
	}
}
