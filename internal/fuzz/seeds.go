package fuzztests

import "testing"

const maxSeedBytes = 64 << 10

var languageSeeds = []string{
	"",
	"const x = 1;\n",
	"const el = <div/>;\n",
	"const el = (\n  <div>\n    hi\n  </div>\n);\n",
	"let node =\n  <section className=\"wide\">\n    <Child {...props}/>\n  </section>;\n",
	"function render() {\n  return <ul>\n    <li>one</li>\n  </ul>;\n}\n",
	"const f = () =>\n  <p>\n    text\n  </p>;\n",
	"const pick = ok ? <A/> : <B>\n  b\n</B>;\n",
	"const both = left && <span>\n  right\n</span>;\n",
	"const frag = <>\n  <First/>\n  <Second/>\n</>;\n",
	"el = cond ? <div>\n</div> : null;\n",
	"<Widget title={<b>\n  t\n</b>}/>",
	"const broken = <div",
	"const s = \"unterminated",
	"/* open comment",
	"const n = 0x;\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add(clampSeed([]byte(seed)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
