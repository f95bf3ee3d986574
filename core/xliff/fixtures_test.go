package xliff

const xliff12Source = `<?xml version="1.0" encoding="UTF-8"?>
<xliff version="1.2" xmlns="urn:oasis:names:tc:xliff:document:1.2">
    <file source-language="en" datatype="plaintext" original="messages.xlf" date="2020-10-18T18:20:51Z" product-name="my_ext">
        <header/>
        <body>
            <trans-unit id="headerComment">
                <source>The default Header Comment.</source>
            </trans-unit>
            <trans-unit id="generator">
                <source>The "Generator" Meta Tag.</source>
                <note>Shown in the page head</note>
            </trans-unit>
        </body>
    </file>
</xliff>`

const xliff12Target = `<?xml version="1.0" encoding="UTF-8"?>
<xliff version="1.2" xmlns="urn:oasis:names:tc:xliff:document:1.2">
    <file source-language="en" target-language="de" datatype="plaintext" original="messages.xlf">
        <header/>
        <body>
            <trans-unit id="headerComment" approved="no">
                <source>The default Header Comment.</source>
                <target>Der Standard-Header-Kommentar.</target>
            </trans-unit>
            <trans-unit id="g" approved="yes">
                <source>The "Generator" Meta Tag.</source>
                <target>Der "Generator"-Meta-Tag.</target>
            </trans-unit>
        </body>
    </file>
</xliff>`

const xliff20Source = `<?xml version="1.0" encoding="UTF-8" ?>
<xliff version="2.0" xmlns="urn:oasis:names:tc:xliff:document:2.0" srcLang="en">
    <file id="f1">
        <unit id="headerComment">
            <segment>
                <source>The default Header Comment.</source>
            </segment>
        </unit>
        <unit id="generator">
            <segment>
                <source>The "Generator" Meta Tag.</source>
            </segment>
        </unit>
    </file>
</xliff>`

const xliff20Target = `<?xml version="1.0" encoding="UTF-8"?>
<xliff version="2.0" xmlns="urn:oasis:names:tc:xliff:document:2.0" srcLang="en" trgLang="de">
    <file id="f1">
        <unit id="headerComment">
            <notes>
                <note>Reviewed by legal</note>
            </notes>
            <segment state="reviewed">
                <source>The default Header Comment.</source>
                <target>Der Standard-Header-Kommentar.</target>
            </segment>
        </unit>
        <unit id="generator">
            <segment state="translated">
                <source>The "Generator" Meta Tag.</source>
                <target>Der "Generator"-Meta-Tag.</target>
            </segment>
        </unit>
    </file>
    <file id="f2">
        <unit id="title">
            <segment state="final">
                <source>Title</source>
                <target>Titel</target>
            </segment>
        </unit>
    </file>
</xliff>`

// sampleDocument builds a valid two-unit document by hand.
func sampleDocument(version Version) *Document {
	return &Document{
		Version: version,
		Files: []*TranslationFile{
			{
				ID:             "messages.json",
				SourceLanguage: "en",
				TargetLanguage: String("de"),
				Units: []*TranslationUnit{
					{
						ID:     "greeting",
						Source: "Hello",
						Target: String("Hallo"),
						State:  StateFinal,
						Note:   String("Shown on the start page"),
					},
					{
						ID:     "farewell",
						Source: "Goodbye & see you",
						State:  StateInitial,
					},
				},
			},
		},
	}
}
