package catalog

import (
	"github.com/dmitrymomot/reqschema/pkg/schema"
	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// Bulk actions of property units.
const (
	ActionOccupy        = "occupy"
	ActionVacate        = "vacate"
	ActionChangeCompany = "change_company"
	ActionChangeType    = "change_type"
)

const (
	propertyBulkMax = 100
	minSquareMeters = 0.01
	maxSquareMeters = 99999.99
	maxRooms        = 100
	maxBathrooms    = 20
)

// PropertyType classifies property units (apartment, office, warehouse).
func PropertyType() schema.Catalog {
	return schema.Catalog{
		Entity: EntityPropertyType,
		Fields: withRecord(
			nameField("name", 2),
			descriptionField(0),
			codeField(2),
			counter("unitsCount"),
		),
		DuplicateKeys: []string{"name", "code"},
		List: schema.ListSpec{
			Sortable: []string{"name", "code", "unitsCount", "createdAt"},
			Filters:  []schema.Field{activeFilter(true)},
		},
		Bulk: &schema.BulkSpec{
			MaxItems: taxonomyBulkMax,
			Actions:  []string{ActionActivate, ActionDeactivate, ActionDelete},
		},
		Stats: []schema.Field{
			schema.Integer("totalTypes"),
			schema.Integer("activeTypes"),
			schema.Integer("inactiveTypes"),
			schema.Integer("totalUnits"),
			schema.Text("mostUsedType", schema.Nullable()),
			schema.Text("leastUsedType", schema.Nullable()),
			schema.Integer("typesWithUnits"),
			schema.Integer("typesWithoutUnits"),
			schema.Mapping("unitsDistribution"),
		},
		Normalizers: normalizers("name"),
	}
}

// PropertyUnit is a rentable or owned unit with its address.
func PropertyUnit() schema.Catalog {
	return schema.Catalog{
		Entity: EntityPropertyUnit,
		Fields: withRecord(
			nameField("name", 1),
			descriptionField(0),
			schema.Decimal("squareMeters", schema.Required(), schema.Rules(
				validator.Between(minSquareMeters, maxSquareMeters),
			)),
			schema.Integer("rooms", schema.Nullable(), schema.Rules(validator.Between(0, maxRooms))),
			schema.Integer("bathrooms", schema.Nullable(), schema.Rules(validator.Between(0, maxBathrooms))),
			schema.Text("floor", schema.Nullable(), schema.Rules(validator.MaxLen(10))),
			schema.Text("address", schema.Nullable(), schema.Rules(validator.MaxLen(255))),
			schema.Text("city", schema.Nullable(), schema.Rules(validator.MaxLen(100))),
			schema.Text("postalCode", schema.Nullable(), schema.Rules(
				validator.MaxLen(10),
				validator.MatchesPattern(`^\d{5}$`, "five digit postal code"),
			)),
			schema.Text("province", schema.Nullable(), schema.Rules(
				validator.ExactLen(2),
				validator.Alpha(),
			)),
			schema.Reference("propertyTypeId", schema.Required()),
			schema.Reference("companyId", schema.Nullable()),
			schema.Bool("isOccupied", schema.UpdateOnly()),
			schema.Text("propertyTypeName", schema.OutputOnly()),
			schema.Text("companyName", schema.OutputOnly()),
			schema.Text("fullAddress", schema.OutputOnly()),
			counter("connectedPodsCount"),
		),
		DuplicateKeys: []string{"name", "companyId"},
		List: schema.ListSpec{
			Sortable: []string{"name", "squareMeters", "rooms", "city", "propertyTypeName", "createdAt"},
			Filters: []schema.Field{
				schema.Reference("propertyTypeId", schema.Nullable()),
				schema.Reference("companyId", schema.Nullable()),
				schema.Text("city", schema.Nullable(), schema.Rules(validator.MaxLen(100))),
				schema.Text("province", schema.Nullable(), schema.Rules(validator.MaxLen(5))),
				activeFilter(true),
				flagFilter("isOccupied"),
				schema.Decimal("minSquareMeters", schema.Nullable(), schema.Rules(validator.Min(0))),
				schema.Decimal("maxSquareMeters", schema.Nullable(), schema.Rules(validator.Min(0))),
				schema.Integer("minRooms", schema.Nullable(), schema.Rules(validator.Min(0))),
				schema.Integer("maxRooms", schema.Nullable(), schema.Rules(validator.Min(0))),
			},
			RangePairs: [][2]string{
				{"minSquareMeters", "maxSquareMeters"},
				{"minRooms", "maxRooms"},
			},
		},
		Bulk: &schema.BulkSpec{
			MaxItems: propertyBulkMax,
			Actions: []string{
				ActionActivate, ActionDeactivate, ActionOccupy, ActionVacate,
				ActionChangeCompany, ActionChangeType, ActionDelete,
			},
			Params: []schema.Field{
				schema.Reference("targetCompanyId", schema.Nullable()),
				schema.Reference("targetPropertyTypeId", schema.Nullable()),
			},
			Conditionals: []schema.Conditional{
				{Action: ActionChangeCompany, Field: "targetCompanyId"},
				{Action: ActionChangeType, Field: "targetPropertyTypeId"},
			},
		},
		Stats: []schema.Field{
			schema.Integer("totalUnits"),
			schema.Integer("activeUnits"),
			schema.Integer("occupiedUnits"),
			schema.Integer("availableUnits"),
			schema.Decimal("totalSquareMeters"),
			schema.Decimal("averageSquareMeters"),
			schema.Mapping("byPropertyType"),
			schema.Mapping("byCity"),
			schema.Mapping("byCompany"),
			schema.Decimal("occupancyRate"),
		},
		Normalizers: append(normalizers("name", "city", "address"),
			schema.UpperCase("province"),
		),
	}
}
