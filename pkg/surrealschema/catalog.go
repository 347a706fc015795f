package surrealschema

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"regexp"
	"slices"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/surrealschema/pkg/logger"
	"github.com/dmitrymomot/surrealschema/pkg/validator"
)

// DefaultLanguage is used when a requested language has no catalog.
const DefaultLanguage = "en"

var (
	// ErrNoLocales is returned when a locale directory holds no YAML files.
	ErrNoLocales = errors.New("surrealschema: no locale files found")

	// ErrInvalidLocale is returned when a locale file can not be parsed.
	ErrInvalidLocale = errors.New("surrealschema: invalid locale file")
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Catalog translates issue messages using their translation keys.
// It is read-only after NewCatalog returns and safe for concurrent use.
type Catalog struct {
	messages    map[string]map[string]string
	defaultLang string
	logger      *slog.Logger
	extra       []localeSource

	// supported[i] is the catalog language matched by tag i of matcher.
	supported []string
	matcher   language.Matcher
}

type localeSource struct {
	fsys fs.FS
	dir  string
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLogger sets the logger used to report missing translations.
func WithLogger(l *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) CatalogOption {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLocales loads additional YAML locale files from dir in fsys. Their
// messages override the built-in ones key by key.
func WithLocales(fsys fs.FS, dir string) CatalogOption {
	return func(c *Catalog) {
		if fsys != nil {
			c.extra = append(c.extra, localeSource{fsys: fsys, dir: dir})
		}
	}
}

// NewCatalog loads the built-in English and German messages plus any
// locales given with WithLocales.
func NewCatalog(opts ...CatalogOption) (*Catalog, error) {
	c := &Catalog{
		messages:    make(map[string]map[string]string),
		defaultLang: DefaultLanguage,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logger.Decorate(c.logger, languageAttr)

	sources := append([]localeSource{{fsys: embeddedLocales, dir: "locales"}}, c.extra...)
	for _, src := range sources {
		if err := c.load(src); err != nil {
			return nil, err
		}
	}

	c.buildMatcher()

	c.logger.Debug("message catalog loaded",
		logger.Component("surrealschema.catalog"),
		slog.Any("languages", c.Languages()),
	)
	return c, nil
}

func (c *Catalog) load(src localeSource) error {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := fs.Glob(src.fsys, path.Join(src.dir, pattern))
		if err != nil {
			return errors.Join(ErrInvalidLocale, err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: %s", ErrNoLocales, src.dir)
	}
	slices.Sort(files)

	for _, file := range files {
		content, err := fs.ReadFile(src.fsys, file)
		if err != nil {
			return errors.Join(ErrInvalidLocale, err)
		}

		var doc map[string]any
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return errors.Join(fmt.Errorf("%w: %s", ErrInvalidLocale, file), err)
		}

		for lang, tree := range doc {
			m, ok := tree.(map[string]any)
			if !ok {
				return fmt.Errorf("%w: %s: language %q must hold a map, got %T", ErrInvalidLocale, file, lang, tree)
			}
			if c.messages[lang] == nil {
				c.messages[lang] = make(map[string]string)
			}
			flatten("", m, c.messages[lang])
		}
	}
	return nil
}

// buildMatcher indexes the catalog languages that are valid BCP 47 tags,
// default language first so it wins when nothing matches.
func (c *Catalog) buildMatcher() {
	langs := slices.DeleteFunc(c.Languages(), func(l string) bool { return l == c.defaultLang })
	langs = append([]string{c.defaultLang}, langs...)

	var tags []language.Tag
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			c.logger.Warn("locale is not a BCP 47 tag",
				logger.Component("surrealschema.catalog"),
				logger.Lang(lang),
				logger.Error(err),
			)
			continue
		}
		tags = append(tags, tag)
		c.supported = append(c.supported, lang)
	}
	c.matcher = language.NewMatcher(tags)
}

// flatten turns nested keys into dotted ones: {a: {b: "x"}} becomes a.b.
func flatten(prefix string, tree map[string]any, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Languages returns the languages with at least one message, sorted.
func (c *Catalog) Languages() []string {
	return slices.Sorted(maps.Keys(c.messages))
}

// Match returns the catalog language closest to the given preferences. Each
// preference is a language tag or an Accept-Language header value such as
// "de-AT,de;q=0.9,en;q=0.5". The default language is returned when nothing
// matches.
func (c *Catalog) Match(preferences ...string) string {
	var tags []language.Tag
	for _, pref := range preferences {
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 || len(c.supported) == 0 {
		return c.defaultLang
	}

	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.defaultLang
	}
	return c.supported[idx]
}

// Message returns the message for key in lang, falling back to the closest
// catalog language and then the default one, with %{name} placeholders
// replaced from values.
func (c *Catalog) Message(lang, key string, values map[string]any) (string, bool) {
	if _, exact := c.messages[lang]; !exact {
		lang = c.Match(lang)
	}
	tmpl, ok := c.messages[lang][key]
	if !ok {
		tmpl, ok = c.messages[c.defaultLang][key]
	}
	if !ok {
		return "", false
	}
	return substitute(tmpl, values), true
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, values map[string]any) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := values[match[2:len(match)-1]]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}

// Localize returns a copy of errs with messages translated to lang. Issues
// without a known translation key keep their message. Paths, codes and
// translation data are left unchanged.
func (c *Catalog) Localize(lang string, errs validator.ValidationErrors) validator.ValidationErrors {
	return c.LocalizeContext(WithLanguage(context.Background(), lang), errs)
}

// LocalizeContext is like Localize with the language taken from ctx.
func (c *Catalog) LocalizeContext(ctx context.Context, errs validator.ValidationErrors) validator.ValidationErrors {
	if len(errs) == 0 {
		return nil
	}

	lang := LanguageFromContext(ctx)
	ctx = WithLanguage(ctx, lang)

	missing := 0
	out := make(validator.ValidationErrors, len(errs))
	for i, issue := range errs {
		out[i] = issue
		if issue.TranslationKey == "" {
			continue
		}
		msg, ok := c.Message(lang, issue.TranslationKey, issue.TranslationValues)
		if !ok {
			missing++
			c.logger.DebugContext(ctx, "missing translation", missingAttrs(issue)...)
			continue
		}
		out[i].Message = msg
	}

	c.logger.DebugContext(ctx, "issues localized",
		logger.Component("surrealschema.catalog"),
		logger.IssueCount(len(errs)),
		slog.Int("missing", missing),
	)
	return out
}

func missingAttrs(issue validator.ValidationError) []any {
	attrs := []any{
		logger.Component("surrealschema.catalog"),
		logger.TranslationKey(issue.TranslationKey),
		logger.Path(issue.Path),
	}
	if kind, ok := issue.TranslationValues["kind"]; ok {
		attrs = append(attrs, logger.Kind(kind))
	}
	if table, ok := issue.TranslationValues["table"].(string); ok {
		attrs = append(attrs, logger.Table(table))
	}
	return attrs
}

type languageContextKey struct{}

// WithLanguage stores lang in ctx for LocalizeContext.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// languageAttr stamps catalog log records with the language being localized.
func languageAttr(ctx context.Context) (slog.Attr, bool) {
	lang, ok := ctx.Value(languageContextKey{}).(string)
	if !ok || lang == "" {
		return slog.Attr{}, false
	}
	return logger.Lang(lang), true
}

// LanguageFromContext returns the language stored by WithLanguage or
// DefaultLanguage.
func LanguageFromContext(ctx context.Context) string {
	lang, _ := ctx.Value(languageContextKey{}).(string)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
