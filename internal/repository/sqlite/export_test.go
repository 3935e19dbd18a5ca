package sqlite

// GetByBatchID reads a stored batch back for assertions.
var GetByBatchID = (*PriceRepository).getByBatchID
