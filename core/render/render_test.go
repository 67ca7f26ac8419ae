package render

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "plain text becomes a paragraph",
			markdown: "hello world",
			want:     "<p>hello world</p>",
		},
		{
			name:     "list items accumulate into one list",
			markdown: "* a\n* b",
			want:     "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name:     "table with separator row",
			markdown: "|H1|H2|\n|---|---|\n|a|b|",
			want:     "<table><tr><th>H1</th><th>H2</th></tr><tr><td>a</td><td>b</td></tr></table>",
		},
		{
			name:     "aligned separator row is also consumed",
			markdown: "|H|\n| :--- |\n|x|",
			want:     "<table><tr><th>H</th></tr><tr><td>x</td></tr></table>",
		},
		{
			name:     "headings close an open list",
			markdown: "* a\n## Title",
			want:     "<ul><li>a</li></ul><h2>Title</h2>",
		},
		{
			name:     "longest heading marker wins",
			markdown: "#### deep\n### mid\n## top",
			want:     "<h4>deep</h4><h3>mid</h3><h2>top</h2>",
		},
		{
			name:     "bold emphasis inside a paragraph",
			markdown: "this is **important** stuff",
			want:     "<p>this is <strong>important</strong> stuff</p>",
		},
		{
			name:     "bold emphasis inside a list item",
			markdown: "* a **bold** item",
			want:     "<ul><li>a <strong>bold</strong> item</li></ul>",
		},
		{
			name:     "line starting with bold is not a list item",
			markdown: "**note** this",
			want:     "<p><strong>note</strong> this</p>",
		},
		{
			name:     "empty line becomes a break and closes a list",
			markdown: "* a\n\ntail",
			want:     "<ul><li>a</li></ul><br><p>tail</p>",
		},
		{
			name:     "table closes an open list and vice versa",
			markdown: "* a\n|H|\n|x|\n* b",
			want:     "<ul><li>a</li></ul><table><tr><th>H</th></tr><tr><td>x</td></tr></table><ul><li>b</li></ul>",
		},
		{
			name:     "open constructs are closed at end of input",
			markdown: "* pending",
			want:     "<ul><li>pending</li></ul>",
		},
		{
			name:     "html in content is escaped",
			markdown: "<script>alert(1)</script>",
			want:     "<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>",
		},
		{
			name:     "empty input renders a single break",
			markdown: "",
			want:     "<br>",
		},
		{
			name:     "lone pipe is a paragraph not a table",
			markdown: "|",
			want:     "<p>|</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.markdown); got != tt.want {
				t.Errorf("Render(%q)\n got: %q\nwant: %q", tt.markdown, got, tt.want)
			}
		})
	}
}
