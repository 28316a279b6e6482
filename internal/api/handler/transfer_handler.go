package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/Nenad034/isplate-backend/internal/api/metrics"
	"github.com/Nenad034/isplate-backend/internal/core/domain"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
)

const exportSheet = "Isplate"

// TransferHandler moves datasets in and out of the system: payments export
// to xlsx/json, supplier and hotel import from xlsx/json. Imports run
// through the same lifecycle services as manual creation, so every imported
// row is audited and lifecycle-managed like any other record.
type TransferHandler struct {
	payments  ports.RecordService[*domain.Payment]
	suppliers ports.RecordService[*domain.Supplier]
	hotels    ports.RecordService[*domain.Hotel]
	activity  ports.ActivityService
	log       zerolog.Logger
}

func NewTransferHandler(
	payments ports.RecordService[*domain.Payment],
	suppliers ports.RecordService[*domain.Supplier],
	hotels ports.RecordService[*domain.Hotel],
	activity ports.ActivityService,
	log zerolog.Logger,
) *TransferHandler {
	return &TransferHandler{payments: payments, suppliers: suppliers, hotels: hotels, activity: activity, log: log}
}

// ExportPayments streams the payment ledger as a spreadsheet or JSON dump.
//
// @Summary      Export payments
// @Tags         transfer
// @Produce      application/octet-stream
// @Param        format  query  string  false  "xlsx (default) or json"
// @Success      200
// @Failure      401  {object}  map[string]string
// @Router       /export/payments [get]
func (h *TransferHandler) ExportPayments(c echo.Context) error {
	ctx := c.Request().Context()

	payments, err := h.payments.List(ctx, false)
	if err != nil {
		return err
	}
	suppliers, err := h.suppliers.List(ctx, false)
	if err != nil {
		return err
	}
	hotels, err := h.hotels.List(ctx, false)
	if err != nil {
		return err
	}

	format := c.QueryParam("format")
	if format == "" {
		format = "xlsx"
	}

	switch format {
	case "json":
		h.activity.Record(ctx, domain.ActionExport, "JSON", actorName(c))
		metrics.TransfersTotal.WithLabelValues("export", "json").Inc()
		return c.JSON(http.StatusOK, map[string]any{
			"suppliers": suppliers,
			"hotels":    hotels,
			"payments":  payments,
		})
	case "xlsx":
		f := excelize.NewFile()
		defer f.Close()

		supplierNames := make(map[string]string, len(suppliers))
		for _, s := range suppliers {
			supplierNames[s.ID] = s.Name
		}
		hotelNames := make(map[string]string, len(hotels))
		for _, hh := range hotels {
			hotelNames[hh.ID] = hh.Name
		}

		sheet := f.GetSheetName(0)
		_ = f.SetSheetName(sheet, exportSheet)

		headers := []string{"Dobavljač", "Hotel", "Usluga", "Iznos", "Valuta", "Datum", "Metoda", "Banka", "Status", "Opis", "Rezervacije"}
		for i, hd := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = f.SetCellValue(exportSheet, cell, hd)
		}

		for row, p := range payments {
			values := []any{
				nameOr(supplierNames[p.SupplierID]),
				nameOr(hotelNames[p.HotelID]),
				nameOr(p.ServiceType),
				p.Amount,
				p.Currency,
				p.Date,
				p.Method,
				p.BankName,
				p.Status,
				p.Description,
				strings.Join(p.Reservations, ", "),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				_ = f.SetCellValue(exportSheet, cell, v)
			}
		}

		h.activity.Record(ctx, domain.ActionExport, "Excel", actorName(c))
		metrics.TransfersTotal.WithLabelValues("export", "xlsx").Inc()

		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf("attachment; filename=isplate-%d.xlsx", time.Now().UnixMilli()))
		c.Response().Header().Set(echo.HeaderContentType,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Response().WriteHeader(http.StatusOK)
		return f.Write(c.Response())
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unsupported format"})
	}
}

type importResponse struct {
	Success  bool `json:"success"`
	Imported int  `json:"imported"`
}

// Import loads suppliers or hotels from an uploaded xlsx or json file. Like
// the dashboard, Serbian column headers are accepted alongside the field
// names; unsupported formats are rejected, not guessed at.
//
// @Summary      Import suppliers or hotels
// @Tags         transfer
// @Accept       multipart/form-data
// @Produce      json
// @Param        target  path      string  true  "suppliers or hotels"
// @Param        file    formData  file    true  "xlsx or json file"
// @Success      200     {object}  importResponse
// @Failure      400     {object}  map[string]string
// @Router       /import/{target} [post]
func (h *TransferHandler) Import(c echo.Context) error {
	target := c.Param("target")
	if target != "suppliers" && target != "hotels" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown import target"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	var rows []map[string]string
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".xlsx", ".xls":
		f, err := excelize.OpenReader(src)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable spreadsheet"})
		}
		defer f.Close()
		rows, err = sheetRows(f)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		metrics.TransfersTotal.WithLabelValues("import", "xlsx").Inc()
	case ".json":
		var raw []map[string]any
		if err := json.NewDecoder(src).Decode(&raw); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable json"})
		}
		rows = make([]map[string]string, 0, len(raw))
		for _, obj := range raw {
			row := make(map[string]string, len(obj))
			for k, v := range obj {
				row[k] = fmt.Sprint(v)
			}
			rows = append(rows, row)
		}
		metrics.TransfersTotal.WithLabelValues("import", "json").Inc()
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unsupported format, use xlsx or json"})
	}

	if len(rows) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no rows to import"})
	}

	ctx := c.Request().Context()
	actor := actorName(c)
	imported := 0
	for _, row := range rows {
		if target == "suppliers" {
			supplier := &domain.Supplier{
				Name:        pick(row, "name", "Naziv"),
				Email:       pick(row, "email", "Email"),
				Phone:       pick(row, "phone", "Telefon"),
				Address:     pick(row, "address", "Adresa"),
				BankAccount: pick(row, "bankAccount", "ZiroRacun"),
				Country:     pick(row, "country", "Drzava"),
			}
			if supplier.Name == "" {
				continue
			}
			if _, err := h.suppliers.Create(ctx, supplier, actor); err != nil {
				h.log.Warn().Err(err).Str("name", supplier.Name).Msg("supplier import row failed")
				continue
			}
		} else {
			rooms, _ := strconv.Atoi(pick(row, "rooms", "Sobe"))
			hotel := &domain.Hotel{
				Name:    pick(row, "name", "Naziv"),
				City:    pick(row, "city", "Grad"),
				Rooms:   rooms,
				Phone:   pick(row, "phone", "Telefon"),
				Manager: pick(row, "manager", "Menadzer"),
				Country: pick(row, "country", "Drzava"),
			}
			if hotel.Name == "" {
				continue
			}
			if _, err := h.hotels.Create(ctx, hotel, actor); err != nil {
				h.log.Warn().Err(err).Str("name", hotel.Name).Msg("hotel import row failed")
				continue
			}
		}
		imported++
	}

	h.activity.Record(ctx, domain.ActionImport, fmt.Sprintf("%s: %d stavki", target, imported), actor)
	return c.JSON(http.StatusOK, importResponse{Success: true, Imported: imported})
}

// sheetRows converts the first sheet into header-keyed rows.
func sheetRows(f *excelize.File) ([]map[string]string, error) {
	sheet := f.GetSheetName(0)
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("sheet has no data rows")
	}

	headers := raw[0]
	rows := make([]map[string]string, 0, len(raw)-1)
	for _, line := range raw[1:] {
		row := make(map[string]string, len(headers))
		for i, hd := range headers {
			if i < len(line) {
				row[hd] = line[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func pick(row map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := row[k]; v != "" {
			return v
		}
	}
	return ""
}

func nameOr(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
