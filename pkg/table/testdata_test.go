package table_test

// rosterPage is a storage-format page with text and a macro around one table
// whose header row lives inside <tbody>.
const rosterPage = `<p>Team roster <ac:structured-macro ac:name="info"><ac:rich-text-body><p>Do not edit &gt; manually</p></ac:rich-text-body></ac:structured-macro></p>` +
	`<table class="wrapped"><colgroup><col /><col /></colgroup><tbody>` +
	`<tr><th>Name</th><th>Role</th></tr>` +
	`<tr><td>Cathy Chatterly</td><td>Public Speaker</td></tr>` +
	`</tbody></table>` +
	`<p>Footer  &nbsp; text<!-- keep me --></p>`

const theadTable = `<table><thead><tr><th>A</th><th>B</th></tr></thead>` +
	`<tbody><tr><td>1</td><td>2</td></tr><tr><td>3</td><td>4</td></tr></tbody></table>`

const nestedTables = `<table><tbody><tr><th>Outer</th></tr>` +
	`<tr><td><table><tbody><tr><th>In</th></tr><tr><td>x</td></tr></tbody></table></td></tr>` +
	`</tbody></table>`

const twoTables = `<h2>One</h2><table><tbody><tr><th>K</th></tr><tr><td>a</td></tr></tbody></table>` +
	`<h2>Two</h2><table><tbody><tr><th>K</th><th>V</th></tr><tr><td>b</td><td>c</td></tr></tbody></table><p>end</p>`

// codeMacro holds table markup as source text inside a CDATA section.
const codeMacro = `<ac:structured-macro ac:name="code"><ac:plain-text-body><![CDATA[if a > b {}
<table><tbody><tr><th>X</th></tr></tbody></table>]]></ac:plain-text-body></ac:structured-macro>`

const codeMacroPage = `<p>Example:</p>` + codeMacro +
	`<table><tbody><tr><th>Name</th><th>Role</th></tr>` +
	`<tr><td>Cathy Chatterly</td><td>Public Speaker</td></tr></tbody></table>`

// footedTable has a second header row and a footer around its body.
const footedTable = `<table><thead><tr><th>N</th></tr><tr><th>sub</th></tr></thead>` +
	`<tbody><tr><td>a</td></tr><tr><td>b</td></tr></tbody>` +
	`<tfoot><tr><td>total</td></tr></tfoot></table>`
