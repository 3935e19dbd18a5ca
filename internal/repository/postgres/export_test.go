package postgres

// GetByBatchID reads a stored batch back for assertions.
var GetByBatchID = (*PriceRepository).getByBatchID
