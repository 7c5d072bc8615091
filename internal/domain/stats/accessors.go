package stats

import "github.com/okian/insertion/internal/domain/metric"

// Accessors used as ranking keys and overlays.

func (s YearStat) Insertion() metric.Float         { return s.InsertionRate }
func (s DomainStat) Insertion() metric.Float       { return s.InsertionRate }
func (s AcademyStat) Insertion() metric.Float      { return s.InsertionRate }
func (s RegionStat) Insertion() metric.Float       { return s.InsertionRate }
func (s GenderDomainStat) Insertion() metric.Float { return s.InsertionRate }
func (s GenderYearStat) Insertion() metric.Float   { return s.InsertionRate }
func (s EquityDomainStat) Insertion() metric.Float { return s.InsertionRate }

// Salary returns the mean salary, falling back to the median when the mean
// was not reported.
func (s DomainStat) Salary() metric.Float { return s.MeanSalary.Or(s.MedianSalary) }

// Salary returns the mean salary, falling back to the median.
func (s GenderDomainStat) Salary() metric.Float { return s.MeanSalary.Or(s.MedianSalary) }
