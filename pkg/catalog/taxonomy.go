package catalog

import (
	"github.com/dmitrymomot/reqschema/pkg/schema"
)

// Bulk actions of the taxonomy levels.
const (
	ActionMoveToCategory    = "move_to_category"
	ActionMoveToSubcategory = "move_to_subcategory"
)

var taxonomySortable = []string{"name", "code", "createdAt", "updatedAt"}

// Category is the top level of the expense taxonomy.
func Category() schema.Catalog {
	return schema.Catalog{
		Entity: EntityCategory,
		Fields: withRecord(
			nameField("name", 1),
			descriptionField(descriptionMaxLen),
			codeField(1),
			counter("subcategoriesCount"),
			counter("invoicesCount"),
		),
		DuplicateKeys: []string{"name", "code"},
		List: schema.ListSpec{
			Sortable: taxonomySortable,
			Filters: []schema.Field{
				activeFilter(false),
				flagFilter("hasSubcategories"),
				flagFilter("hasInvoices"),
			},
		},
		Bulk: &schema.BulkSpec{
			IDsField: "categoryIds",
			MaxItems: taxonomyBulkMax,
			Actions:  []string{ActionActivate, ActionDeactivate, ActionDelete},
		},
		Stats: []schema.Field{
			schema.Integer("totalCategories"),
			schema.Integer("activeCategories"),
			schema.Integer("categoriesWithSubcategories"),
			schema.Integer("categoriesWithInvoices"),
			schema.Text("mostUsedCategory", schema.Nullable()),
			schema.Text("leastUsedCategory", schema.Nullable()),
		},
		Normalizers: normalizers("name"),
	}
}

// Subcategory belongs to a category.
func Subcategory() schema.Catalog {
	return schema.Catalog{
		Entity: EntitySubcategory,
		Fields: withRecord(
			schema.Reference("categoryId", schema.Required()),
			nameField("name", 1),
			descriptionField(descriptionMaxLen),
			codeField(1),
			counter("minicategoriesCount"),
			counter("invoicesCount"),
		),
		DuplicateKeys: []string{"name", "categoryId", "code"},
		List: schema.ListSpec{
			Sortable: taxonomySortable,
			Filters: []schema.Field{
				schema.Reference("categoryId", schema.Nullable()),
				activeFilter(false),
				flagFilter("hasMinicategories"),
				flagFilter("hasInvoices"),
			},
		},
		Bulk: &schema.BulkSpec{
			IDsField: "subcategoryIds",
			MaxItems: taxonomyBulkMax,
			Actions:  []string{ActionActivate, ActionDeactivate, ActionDelete, ActionMoveToCategory},
			Params: []schema.Field{
				schema.Reference("targetCategoryId", schema.Nullable()),
			},
			Conditionals: []schema.Conditional{
				{Action: ActionMoveToCategory, Field: "targetCategoryId"},
			},
		},
		Stats: []schema.Field{
			schema.Integer("totalSubcategories"),
			schema.Integer("activeSubcategories"),
			schema.Integer("subcategoriesWithMinicategories"),
			schema.Integer("subcategoriesWithInvoices"),
			schema.Text("mostUsedSubcategory", schema.Nullable()),
			schema.Text("leastUsedSubcategory", schema.Nullable()),
			schema.Sequence("byCategory", schema.Mapping("entry")),
			schema.Decimal("averageMinicategoriesPerSubcategory"),
		},
		Normalizers: normalizers("name"),
	}
}

// Minicategory belongs to a subcategory.
func Minicategory() schema.Catalog {
	return schema.Catalog{
		Entity: EntityMinicategory,
		Fields: withRecord(
			schema.Reference("subcategoryId", schema.Required()),
			nameField("name", 1),
			descriptionField(descriptionMaxLen),
			codeField(1),
			counter("invoicesCount"),
		),
		DuplicateKeys: []string{"name", "subcategoryId", "code"},
		List: schema.ListSpec{
			Sortable: taxonomySortable,
			Filters: []schema.Field{
				schema.Reference("subcategoryId", schema.Nullable()),
				schema.Reference("categoryId", schema.Nullable()),
				activeFilter(false),
				flagFilter("hasInvoices"),
			},
		},
		Bulk: &schema.BulkSpec{
			IDsField: "minicategoryIds",
			MaxItems: taxonomyBulkMax,
			Actions:  []string{ActionActivate, ActionDeactivate, ActionDelete, ActionMoveToSubcategory},
			Params: []schema.Field{
				schema.Reference("targetSubcategoryId", schema.Nullable()),
			},
			Conditionals: []schema.Conditional{
				{Action: ActionMoveToSubcategory, Field: "targetSubcategoryId"},
			},
		},
		Stats: []schema.Field{
			schema.Integer("totalMinicategories"),
			schema.Integer("activeMinicategories"),
			schema.Integer("minicategoriesWithInvoices"),
			schema.Text("mostUsedMinicategory", schema.Nullable()),
			schema.Text("leastUsedMinicategory", schema.Nullable()),
			schema.Sequence("bySubcategory", schema.Mapping("entry")),
			schema.Sequence("byCategory", schema.Mapping("entry")),
		},
		Normalizers: normalizers("name"),
	}
}
