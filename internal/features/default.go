package features

import "github.com/emergentai/formdocs/internal/assets"

var defaultCatalog = NewCatalog(
	Record{
		Title:       "Controlled form",
		Icon:        assets.IconControlled,
		Description: Describe(Plain("No need to wrap with Form tag.")),
	},
	Record{
		Title:       "Build in Typescript",
		Icon:        assets.IconBuild,
		Description: Describe(Plain("Get all the features with autocomplete, error messages, typesafety and more.")),
	},
	Record{
		Title: "Support for classes",
		Icon:  assets.IconClasses,
		Description: Describe(
			Plain("Possability of "),
			Emphasis("classes"),
			Plain(" as default form data."),
		),
	},
	Record{
		Title:       "Validation by schema",
		Icon:        assets.IconValidations,
		Description: Describe(Plain("No native validation. The entire validation is up to the developer.")),
	},
	Record{
		Title:       "Compatiblity with 3rd-party UI libraries",
		Icon:        assets.IconLibraries,
		Description: Describe(Plain("Simple to use with existing HTML form inputs and 3rd-party UI libraries.")),
	},
	Record{
		Title:       "Support for reactjs and react-native",
		Icon:        assets.IconWebMobile,
		Description: Describe(Plain("Same library for multiple platforms.")),
	},
)

// Default returns the catalog shown on the homepage.
func Default() Catalog {
	return defaultCatalog
}
