package employee

import (
	"fmt"

	"ems/internal/domain/model"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// nextCode derives the next employee code from the unfiltered employee
// count, so the sequence never reuses a code across soft-deleted rows.
func nextCode(totalEverCreated int64) string {
	return fmt.Sprintf("EMP%06d", totalEverCreated+1)
}

// clampPage normalizes pagination input: page numbers below 1 become 1 and
// the size is forced into [1, maxPageSize], defaulting when non-positive.
func clampPage(pageNumber, pageSize int) (int, int) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageNumber, pageSize
}

// pageSlice returns the half-open window [(page-1)*size, page*size) of items.
func pageSlice[T any](items []T, pageNumber, pageSize int) []T {
	start := (pageNumber - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// computeSalary fills the derived gross and net amounts:
// gross = basic + allowances, net = gross - deductions.
func computeSalary(s *model.Salary) {
	gross := s.BasicSalary
	for _, part := range []*float64{s.HouseRentAllowance, s.TransportAllowance, s.MedicalAllowance, s.OtherAllowances} {
		if part != nil {
			gross += *part
		}
	}
	net := gross
	for _, part := range []*float64{s.TaxDeduction, s.OtherDeductions} {
		if part != nil {
			net -= *part
		}
	}
	s.GrossSalary = gross
	s.NetSalary = net
}
