package tabular

import "github.com/ukaji3/mxmh-go/pkg/tabular/models"

// Preview returns copies of the first n rows of ds in file order.
// It returns every row when ds has fewer than n, and none when n <= 0.
func Preview(ds *models.Dataset, n int) []models.Row {
	if n <= 0 || ds.Len() == 0 {
		return []models.Row{}
	}
	if n > ds.Len() {
		n = ds.Len()
	}

	rows := make([]models.Row, n)
	for i := 0; i < n; i++ {
		rows[i] = ds.Rows[i].Clone()
	}
	return rows
}

// Head returns Preview with DefaultPreviewRows.
func Head(ds *models.Dataset) []models.Row {
	return Preview(ds, DefaultPreviewRows)
}
