package domain

import "strings"

// MappingType - тип критерия сопоставления
type MappingType string

const (
	MappingEmployeeID MappingType = "employeeId"
	MappingTeamID     MappingType = "teamId"
	MappingAreaID     MappingType = "areaId"
	MappingCityID     MappingType = "cityId"
	MappingCountryID  MappingType = "countryId"
)

// MappingTypes перечисляет поддерживаемые типы в каноническом порядке
var MappingTypes = []MappingType{
	MappingEmployeeID,
	MappingTeamID,
	MappingAreaID,
	MappingCityID,
	MappingCountryID,
}

type mappingTypeInfo struct {
	snake    string
	accessor func(*Employee) string
}

var mappingTypeTable = map[MappingType]mappingTypeInfo{
	MappingEmployeeID: {snake: "employee_id", accessor: func(e *Employee) string { return e.ID }},
	MappingTeamID:     {snake: "team_id", accessor: func(e *Employee) string { return e.TeamID }},
	MappingAreaID:     {snake: "area_id", accessor: func(e *Employee) string { return e.AreaID }},
	MappingCityID:     {snake: "city_id", accessor: func(e *Employee) string { return e.CityID }},
	MappingCountryID:  {snake: "country_id", accessor: func(e *Employee) string { return e.CountryID }},
}

// ParseMappingType принимает camelCase ("teamId") или snake_case ("team_id")
func ParseMappingType(s string) (MappingType, error) {
	s = strings.TrimSpace(s)
	if _, ok := mappingTypeTable[MappingType(s)]; ok {
		return MappingType(s), nil
	}
	for t, info := range mappingTypeTable {
		if info.snake == s {
			return t, nil
		}
	}
	return "", ErrInvalidMappingType
}

func (t MappingType) String() string {
	return string(t)
}

// Snake возвращает вариант имени, используемый в агрегированных записях
func (t MappingType) Snake() string {
	return mappingTypeTable[t].snake
}

// ValueOf возвращает значение поля сотрудника, соответствующего типу.
// Для неизвестного типа возвращает false.
func (t MappingType) ValueOf(e *Employee) (string, bool) {
	info, ok := mappingTypeTable[t]
	if !ok {
		return "", false
	}
	return info.accessor(e), true
}

// Matches проверяет, подходит ли сотрудник под предикат.
// Неизвестный тип никогда не совпадает.
func Matches(e *Employee, m Mapping) bool {
	value, ok := m.Type.ValueOf(e)
	if !ok {
		return false
	}
	return value == m.Value
}

// MatchesAny - логическое ИЛИ по всем предикатам; пустой список не совпадает ни с кем
func MatchesAny(e *Employee, mappings []Mapping) bool {
	for _, m := range mappings {
		if Matches(e, m) {
			return true
		}
	}
	return false
}

// MappingFromRecord переводит агрегированную запись в предикат
func MappingFromRecord(rec *MappingRecord) (Mapping, bool) {
	t, err := ParseMappingType(rec.MappingType)
	if err != nil {
		return Mapping{}, false
	}
	return Mapping{Type: t, Value: rec.MappingID}, true
}
