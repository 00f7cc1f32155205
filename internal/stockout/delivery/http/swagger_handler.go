package http

// CreateStockOut godoc
// @Summary Record a stock-out transaction
// @Description Atomically deduct stock for every line and create an immutable costed history record
// @Tags StockOut
// @Accept json
// @Produce json
// @Param request body object{items=array} true "Stock-out lines"
// @Success 200 {object} object{success=bool,message=string,data=object{totalCost=number}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/stock-out-history [post]
func (h *HistoryHandler) CreateStockOutDoc() {}

// ListHistory godoc
// @Summary List stock-out history
// @Description Get all stock-out history records, newest first
// @Tags StockOut
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/stock-out-history [get]
func (h *HistoryHandler) ListHistoryDoc() {}

// HistoryByDate godoc
// @Summary Get stock-out history for a day
// @Description Get stock-out history records for a specific calendar day
// @Tags StockOut
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/stock-out-history/date/{date} [get]
func (h *HistoryHandler) HistoryByDateDoc() {}

// HistoryByRange godoc
// @Summary Get stock-out history for a date range
// @Description Get stock-out history records between two dates, inclusive
// @Tags StockOut
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/stock-out-history/range [get]
func (h *HistoryHandler) HistoryByRangeDoc() {}
