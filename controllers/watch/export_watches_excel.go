package watchControllers

import (
	"net/http"

	"github.com/aliroohan/TagHeuer-Backend/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportWatchesToExcel streams the whole catalog as a spreadsheet.
//
// GET /api/watches/export (admin)
func ExportWatchesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var watches []models.Watch
		if err := db.Find(&watches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch watches"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Watches")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Reference", "Brand", "Category",
			"Price", "Quantity", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, w := range watches {
			row := sheet.AddRow()
			row.AddCell().SetValue(w.ID)
			row.AddCell().SetValue(w.Name)
			row.AddCell().SetValue(w.Reference)
			row.AddCell().SetValue(w.Brand)
			row.AddCell().SetValue(w.Category)
			row.AddCell().SetValue(w.Price)
			row.AddCell().SetValue(w.Quantity)
			row.AddCell().SetValue(w.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(w.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=watches.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to write Excel file"})
			return
		}
	}
}
