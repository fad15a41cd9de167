package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/clinicdesk/clinic-api/internal/model"
	"github.com/clinicdesk/clinic-api/internal/repository"
)

// DefaultCaseSearchLimit caps the number of case summaries one search
// returns.
const DefaultCaseSearchLimit = 200

type caseSearchRepository struct {
	db    *sqlx.DB
	limit int
	now   func() time.Time
}

func NewCaseSearchRepository(db *sqlx.DB, limit int) repository.CaseSearchRepository {
	if limit <= 0 {
		limit = DefaultCaseSearchLimit
	}
	return &caseSearchRepository{db: db, limit: limit, now: time.Now}
}

func (r *caseSearchRepository) SearchCases(ctx context.Context, criteria *model.SearchCriteria) (*model.CaseSearchResult, error) {
	if criteria == nil {
		criteria = &model.SearchCriteria{}
	}

	// Query one row past the cap so truncation is detectable.
	query, args := buildCaseSearchQuery(criteria, r.now(), r.limit+1)
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var cases []*model.CaseSummary
	if err := r.db.SelectContext(ctx, &cases, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search cases: %w", err)
	}

	result := &model.CaseSearchResult{Cases: cases}
	if len(cases) > r.limit {
		result.Cases = cases[:r.limit]
		result.Truncated = true
	}
	if result.Cases == nil {
		result.Cases = []*model.CaseSummary{}
	}
	return result, nil
}

// caseQuery accumulates independent predicate clauses plus their bound
// arguments. Clauses use "?" placeholders and are AND-combined; the
// caller rebinds for postgres.
type caseQuery struct {
	clauses []string
	args    []interface{}
}

func (q *caseQuery) where(clause string, args ...interface{}) {
	q.clauses = append(q.clauses, clause)
	q.args = append(q.args, args...)
}

// buildCaseSearchQuery compiles the criteria into one bounded SELECT over
// patients. Every criterion beyond the base demographic fields is an
// independent EXISTS check against the patient: a patient matches a
// visit-level criterion when any qualifying visit exists, and two
// different treatments may jointly satisfy two treatment-level criteria.
func buildCaseSearchQuery(criteria *model.SearchCriteria, now time.Time, limit int) (string, []interface{}) {
	q := &caseQuery{}

	// Soft-delete exclusion comes first and is not optional.
	q.where(`p.deleted_at IS NULL`)

	if criteria.Ethnicity != nil {
		q.where(`p.ethnicity = ?`, *criteria.Ethnicity)
	}
	if criteria.Sex != nil {
		q.where(`p.sex = ?`, *criteria.Sex)
	}

	// Age bounds are inclusive and computed from the birthday relative to
	// now: age >= min means born on or before the min-th birthday cutoff,
	// age <= max means born after the (max+1)-th cutoff.
	if criteria.AgeMin != nil {
		q.where(`p.birthday <= ?`, now.AddDate(-*criteria.AgeMin, 0, 0))
	}
	if criteria.AgeMax != nil {
		q.where(`p.birthday > ?`, now.AddDate(-(*criteria.AgeMax+1), 0, 0))
	}

	if criteria.MinVisits != nil {
		q.where(`(SELECT COUNT(*) FROM visits v
			WHERE v.patient_id = p.id AND v.deleted_at IS NULL) >= ?`,
			*criteria.MinVisits)
	}

	for _, flag := range []struct {
		consentType model.ConsentType
		required    bool
	}{
		{model.ConsentTypeBotulinum, criteria.HasBotulinumConsent},
		{model.ConsentTypeFiller, criteria.HasFillerConsent},
		{model.ConsentTypePhoto, criteria.HasPhotoConsent},
	} {
		// An unset flag means "don't care", never "must not have".
		if flag.required {
			q.where(`EXISTS (SELECT 1 FROM consents c
				WHERE c.patient_id = p.id AND c.deleted_at IS NULL
				AND c.type = ?)`, string(flag.consentType))
		}
	}

	if criteria.VisitDateFrom != nil || criteria.VisitDateTo != nil {
		sub := `EXISTS (SELECT 1 FROM visits v
			WHERE v.patient_id = p.id AND v.deleted_at IS NULL`
		var args []interface{}
		if criteria.VisitDateFrom != nil {
			sub += ` AND v.visit_date >= ?`
			args = append(args, *criteria.VisitDateFrom)
		}
		if criteria.VisitDateTo != nil {
			sub += ` AND v.visit_date <= ?`
			args = append(args, *criteria.VisitDateTo)
		}
		sub += `)`
		q.where(sub, args...)
	}

	if criteria.PractitionerID != nil {
		q.where(`EXISTS (SELECT 1 FROM visits v
			WHERE v.patient_id = p.id AND v.deleted_at IS NULL
			AND v.practitioner_id = ?)`, *criteria.PractitionerID)
	}

	if criteria.LotNumber != nil {
		q.where(`EXISTS (SELECT 1 FROM treatments t
			JOIN visits v ON t.visit_id = v.id
			WHERE v.patient_id = p.id AND v.deleted_at IS NULL
			AND t.deleted_at IS NULL
			AND t.lot_number ILIKE ? ESCAPE '\')`,
			"%"+escapeLike(*criteria.LotNumber)+"%")
	}

	if len(criteria.ProductIDs) > 0 {
		q.where(`EXISTS (SELECT 1 FROM treatments t
			JOIN visits v ON t.visit_id = v.id
			WHERE v.patient_id = p.id AND v.deleted_at IS NULL
			AND t.deleted_at IS NULL
			AND t.product_id = ANY(?))`, pq.Array(criteria.ProductIDs))
	}

	if len(criteria.TreatmentCategorySlugs) > 0 {
		q.where(`EXISTS (SELECT 1 FROM treatments t
			JOIN visits v ON t.visit_id = v.id
			WHERE v.patient_id = p.id AND v.deleted_at IS NULL
			AND t.deleted_at IS NULL
			AND t.category_slug = ANY(?))`, pq.Array(criteria.TreatmentCategorySlugs))
	}

	if len(criteria.TreatedAreaIDs) > 0 {
		q.where(`EXISTS (SELECT 1 FROM treatment_areas ta
			JOIN treatments t ON ta.treatment_id = t.id
			JOIN visits v ON t.visit_id = v.id
			WHERE v.patient_id = p.id AND v.deleted_at IS NULL
			AND t.deleted_at IS NULL
			AND ta.treated_area_id = ANY(?))`, pq.Array(criteria.TreatedAreaIDs))
	}

	// Visit and treatment counts are independent non-deleted totals, not
	// restricted to the rows that satisfied the filter.
	query := `SELECT p.id AS patient_id, p.first_name, p.last_name, p.sex,
		p.birthday, p.ethnicity, p.location,
		(SELECT COUNT(*) FROM visits v
			WHERE v.patient_id = p.id AND v.deleted_at IS NULL) AS visit_count,
		(SELECT COUNT(*) FROM treatments t
			JOIN visits v ON t.visit_id = v.id
			WHERE v.patient_id = p.id AND v.deleted_at IS NULL
			AND t.deleted_at IS NULL) AS treatment_count
	FROM patients p
	WHERE ` + strings.Join(q.clauses, "\n	AND ") + `
	ORDER BY p.last_name, p.first_name
	LIMIT ?`

	return query, append(q.args, limit)
}

// escapeLike escapes LIKE metacharacters so a lot number is matched as a
// literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
