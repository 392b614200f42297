package catalog

import (
	"github.com/dmitrymomot/reqschema/pkg/sanitizer"
	"github.com/dmitrymomot/reqschema/pkg/schema"
	"github.com/dmitrymomot/reqschema/pkg/validator"
)

// Platform types a scraper access can log into.
var PlatformTypes = []string{"energia", "gas", "telecom", "acqua", "banca", "assicurazione"}

// Scrape frequencies.
var ScrapeFrequencies = []string{"hourly", "daily", "weekly", "monthly"}

// Bulk actions of scraper accesses.
const (
	ActionEnableAutoScrape  = "enable_auto_scrape"
	ActionDisableAutoScrape = "disable_auto_scrape"
	ActionVerifyCredentials = "verify_credentials"
)

const DefaultScrapeFrequency = "daily"

const (
	scraperNotesMaxLen       = 1000
	scraperPlatformURLMaxLen = 255
)

// ScraperAccess stores the credentials used to download invoices from a
// supplier portal. Credentials are write-only; responses carry a masked copy.
func ScraperAccess() schema.Catalog {
	return schema.Catalog{
		Entity: EntityScraperAccess,
		Fields: withRecord(
			nameField("platformName", 1),
			schema.Text("platformType", schema.Required(), schema.Rules(validator.OneOfListed(PlatformTypes...))),
			schema.Text("platformUrl", schema.Nullable(), schema.Rules(
				validator.MaxLen(scraperPlatformURLMaxLen),
				validator.URL(),
			)),
			schema.Mapping("accessData", schema.Required(), schema.WriteOnly(), schema.Rules(
				validator.NotEmpty(),
				validator.RequiredKeys("username", "password"),
			), schema.Doc("portal credentials, at least username and password")),
			schema.Text("scrapeFrequency", schema.Default(DefaultScrapeFrequency), schema.Rules(
				validator.OneOfListed(ScrapeFrequencies...),
			)),
			schema.Bool("autoScrape", schema.Default(true)),
			schema.Text("notes", schema.Nullable(), schema.Rules(validator.MaxLen(scraperNotesMaxLen))),
			schema.Mapping("configJson", schema.Nullable()),
			schema.Reference("companyId", schema.Required()),
			schema.Mapping("accessDataMasked", schema.OutputOnly()),
			schema.Bool("isVerified", schema.OutputOnly()),
			schema.Timestamp("lastVerified", schema.OutputOnly(), schema.Nullable()),
			schema.Timestamp("lastScrape", schema.OutputOnly(), schema.Nullable()),
			schema.Text("companyName", schema.OutputOnly()),
			schema.Text("statusSummary", schema.OutputOnly()),
			schema.Bool("isScrapeDue", schema.OutputOnly()),
			schema.Sequence("requiredCredentials", schema.Text("credential"), schema.OutputOnly()),
		),
		DuplicateKeys: []string{"platformName", "companyId"},
		List: schema.ListSpec{
			Sortable: []string{"platformName", "platformType", "companyName", "lastVerified", "lastScrape", "createdAt"},
			Filters: []schema.Field{
				schema.Text("platformType", schema.Nullable(), schema.Rules(validator.OneOfListed(PlatformTypes...))),
				schema.Reference("companyId", schema.Nullable()),
				activeFilter(true),
				flagFilter("isVerified"),
				flagFilter("autoScrape"),
				flagFilter("scrapeDue"),
			},
		},
		Bulk: &schema.BulkSpec{
			MaxItems: propertyBulkMax,
			Actions: []string{
				ActionActivate, ActionDeactivate, ActionEnableAutoScrape,
				ActionDisableAutoScrape, ActionVerifyCredentials, ActionDelete,
			},
		},
		Stats: []schema.Field{
			schema.Integer("totalAccesses"),
			schema.Integer("activeAccesses"),
			schema.Integer("verifiedAccesses"),
			schema.Integer("autoScrapeEnabled"),
			schema.Integer("pendingVerification"),
			schema.Integer("scrapeDueCount"),
			schema.Mapping("byPlatformType"),
			schema.Mapping("byCompany"),
			schema.Integer("recentScrapes", schema.Doc("scrapes in the last 7 days")),
		},
		Normalizers: append(normalizers("platformName"),
			schema.Transform(sanitizer.Compose(sanitizer.CollapseWhitespace, sanitizer.ToLower), "platformType", "scrapeFrequency"),
		),
	}
}
