// Package versions pins the npm package versions generators install.
package versions

const (
	Nx = "8.9.0"

	React         = "16.12.0"
	ReactDom      = "16.12.0"
	TypesReact    = "16.9.17"
	TypesReactDom = "16.9.4"
	ReactIs       = "16.12.0"
	TypesReactIs  = "16.7.1"

	TestingLibraryReact = "9.4.0"

	StyledComponents      = "5.0.0"
	TypesStyledComponents = "4.4.2"
	EmotionStyled         = "10.0.27"
	EmotionCore           = "10.0.27"

	ReactRouter      = "5.1.2"
	TypesReactRouter = "5.1.3"

	BabelCore             = "7.8.3"
	BabelPresetEnv        = "7.8.3"
	BabelPresetReact      = "7.8.3"
	BabelPresetTypeScript = "7.8.3"
	BabelPluginDecorators = "7.8.3"
	BabelLoader           = "8.0.6"
	BabelPluginMacros     = "2.8.0"
	CoreJs                = "3.6.4"
	Regenerator           = "0.13.3"

	Eslint                 = "6.8.0"
	TypescriptEslint       = "2.19.2"
	EslintConfigPrettier   = "6.0.0"
	EslintPluginImport     = "2.20.1"
	EslintPluginJsxA11y    = "6.2.3"
	EslintPluginReact      = "7.18.0"
	EslintPluginReactHooks = "2.4.0"
	Tslint                 = "5.20.1"

	Cypress = "3.8.2"

	Jest      = "24.9.0"
	TypesJest = "24.9.1"
	TsJest    = "24.3.0"
)
