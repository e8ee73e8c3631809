// Package filter 組合列表查詢的條件。每個條件都是封閉的 tagged variant，
// repository 依 allowlist 將邏輯欄位轉為 SQL 欄位後才會進入查詢字串。
package filter

import (
	"fmt"
	"strings"
	"time"

	apperrors "member-events-api/pkg/app_errors"
)

type Kind int

const (
	Equals Kind = iota + 1
	Contains
	DateRange
)

func (k Kind) String() string {
	switch k {
	case Equals:
		return "equals"
	case Contains:
		return "contains"
	case DateRange:
		return "date_range"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Condition 單一條件。Value 用於 Equals/Contains，From/To 用於 DateRange（[From, To)）
type Condition struct {
	Field string
	Kind  Kind
	Value any
	From  time.Time
	To    time.Time
}

// Conditions 依序以 AND 串接；空集合代表不過濾
type Conditions []Condition

func Eq(field string, value any) Condition {
	return Condition{Field: field, Kind: Equals, Value: value}
}

// Like 不分大小寫的子字串比對
func Like(field, text string) Condition {
	return Condition{Field: field, Kind: Contains, Value: text}
}

// OnDay day 當日 00:00 (UTC) 起至隔日 00:00 止
func OnDay(field string, day time.Time) Condition {
	start := StartOfDay(day)
	return Condition{Field: field, Kind: DateRange, From: start, To: start.AddDate(0, 0, 1)}
}

func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay 接受 YYYY-MM-DD 或 RFC3339
func ParseDay(s string) (time.Time, error) {
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, apperrors.ErrInvalidInput)
	}
	return StartOfDay(t), nil
}

// Where 產生 WHERE 子句（不含 WHERE 關鍵字）與參數。
// columns 將邏輯欄位對應到 SQL 欄位；argPos 為第一個參數的位置。
func (cs Conditions) Where(columns map[string]string, argPos int) (string, []any, error) {
	if len(cs) == 0 {
		return "", nil, nil
	}

	parts := make([]string, 0, len(cs))
	args := make([]any, 0, len(cs))

	for _, c := range cs {
		column, ok := columns[c.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownFilterField, c.Field)
		}

		switch c.Kind {
		case Equals:
			parts = append(parts, fmt.Sprintf("%s = $%d", column, argPos))
			args = append(args, c.Value)
			argPos++
		case Contains:
			parts = append(parts, fmt.Sprintf("strpos(lower(%s), lower($%d)) > 0", column, argPos))
			args = append(args, c.Value)
			argPos++
		case DateRange:
			parts = append(parts, fmt.Sprintf("%s >= $%d AND %s < $%d", column, argPos, column, argPos+1))
			args = append(args, c.From, c.To)
			argPos += 2
		default:
			return "", nil, fmt.Errorf("unsupported filter kind %s for %s", c.Kind, c.Field)
		}
	}

	return strings.Join(parts, " AND "), args, nil
}

// Apply 將條件附加到基底查詢，並依 orderBy 排序
func (cs Conditions) Apply(base string, columns map[string]string, orderBy string) (string, []any, error) {
	where, args, err := cs.Where(columns, 1)
	if err != nil {
		return "", nil, err
	}
	query := base
	if where != "" {
		query += "\nWHERE " + where
	}
	if orderBy != "" {
		query += "\nORDER BY " + orderBy
	}
	return query, args, nil
}
