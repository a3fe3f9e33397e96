package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vitetag/internal/core/domain"
)

func TestAttributes_String(t *testing.T) {
	tests := []struct {
		name  string
		attrs domain.Attributes
		want  string
	}{
		{
			name:  "empty",
			attrs: nil,
			want:  "",
		},
		{
			name: "values in order",
			attrs: domain.Attributes{
				domain.StringAttr("rel", "modulepreload"),
				domain.StringAttr("href", "/build/app.js"),
			},
			want: `rel="modulepreload" href="/build/app.js"`,
		},
		{
			name: "omitted values are dropped",
			attrs: domain.Attributes{
				domain.StringAttr("rel", "modulepreload"),
				domain.OmittedAttr("nonce"),
				domain.OptionalAttr("integrity", "", false),
				domain.StringAttr("href", "/build/app.js"),
			},
			want: `rel="modulepreload" href="/build/app.js"`,
		},
		{
			name: "empty string and zero are rendered",
			attrs: domain.Attributes{
				domain.StringAttr("integrity", ""),
				domain.IntAttr("tabindex", 0),
			},
			want: `integrity="" tabindex="0"`,
		},
		{
			name: "falsy looking strings are rendered",
			attrs: domain.Attributes{
				domain.StringAttr("integrity", "0"),
			},
			want: `integrity="0"`,
		},
		{
			name: "flags render bare",
			attrs: domain.Attributes{
				domain.StringAttr("type", "module"),
				domain.FlagAttr("async"),
			},
			want: `type="module" async`,
		},
		{
			name: "values are escaped",
			attrs: domain.Attributes{
				domain.StringAttr("nonce", `a"b<c`),
			},
			want: `nonce="a&#34;b&lt;c"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.attrs.String())
		})
	}
}

func TestAttributes_SetKeepsPosition(t *testing.T) {
	base := domain.Attributes{
		domain.StringAttr("type", "module"),
		domain.StringAttr("src", "/a.js"),
	}

	replaced := base.Set(domain.StringAttr("type", "text/javascript"))
	assert.Equal(t, `type="text/javascript" src="/a.js"`, replaced.String())
	assert.Equal(t, `type="module" src="/a.js"`, base.String(), "Set must not mutate the receiver")

	appended := base.Merge(domain.Attributes{domain.StringAttr("integrity", "sha384-x")})
	assert.Equal(t, `type="module" src="/a.js" integrity="sha384-x"`, appended.String())
}

func TestAttributes_GetAndWithout(t *testing.T) {
	attrs := domain.Attributes{
		domain.StringAttr("rel", "preload"),
		domain.StringAttr("href", "/a.css"),
		domain.OmittedAttr("nonce"),
	}

	href, ok := attrs.Get("href")
	assert.True(t, ok)
	assert.Equal(t, "/a.css", href.Value)

	_, ok = attrs.Get("integrity")
	assert.False(t, ok)

	assert.Equal(t, `rel="preload"`, attrs.Without("href").String())
	assert.Len(t, attrs.Rendered(), 2)
}
