// Package ircmsg implements parsing and formatting of IRC message lines.
//
// A message line has the shape [@tags ][:source ]command CRLF, where tags
// are IRCv3 message tags, source is the nick!user@host mask of the sender and
// command is a verb followed by its arguments.
//
// # Examples
//
//	"PRIVMSG #test :Hey, I am a message!\r\n"
//	":coyote!0@acme.com NOTICE * :beep beep\r\n"
//	"@+id=1;acme.org/hash=abc :MrT!timmy@test.tld PRIVMSG #test :hi\r\n"
//
// # Basic Usage
//
// Parsing:
//
//	msg, err := ircmsg.Parse("PRIVMSG #test :hi\r\n")
//	msg.Command().Verb()      // "PRIVMSG"
//	msg.Command().Arguments() // ["#test", "hi"]
//
// Formatting:
//
//	line, err := ircmsg.Format(msg) // "PRIVMSG #test :hi\r\n"
//
// Building:
//
//	line, err := ircmsg.NewBuilder().
//		WithTag("id", "1", ircmsg.Vendor("acme.org")).
//		Command("PRIVMSG", "#test", "hello there").
//		Format()
//
// Streams of lines are handled by Decoder and Encoder, which wrap an
// io.ByteReader and io.Writer without buffering of their own.
//
// # Tags
//
// Tag values are kept in their escaped wire form. TagList.Get returns that
// form as-is and TagList.Unescape decodes it. Values built from plain text
// (Escaped, Builder.WithTag) are escaped on the way in.
//
// A tag either carries a value or is a flag. An explicit empty value ("key=")
// is a third state: the parser keeps it, but the formatter refuses to write it.
//
// Tag lists are normalized: for every key only the last occurrence survives,
// and a client-only tag (+key) replaces a plain tag with the same key, whatever
// the order on the wire. The winner is stored under its own key.
//
// # Limits
//
// A line may be at most 512 bytes excluding the tags, and the tags at most
// 4096 bytes. Longer lines fail with ErrMessageTooLong.
//
// # Concurrency
//
// Parser and Formatter hold no mutable state and may be shared freely. All
// message values are immutable once built.
package ircmsg
