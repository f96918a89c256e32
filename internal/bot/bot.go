package bot

import (
	"bufio"
	"fmt"
	"io"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/rolodex/pkg/book"
)

// Bot is one interactive session over an address book. All state is
// explicit: the book, the store it persists to, the clock feeding the
// birthday window, the logger, and the input/output streams. There are
// no package-level mutable globals, and the session is single-threaded:
// one command is fully processed before the next line is read.
type Bot struct {
	book  *book.AddressBook
	store book.Store
	clock clock.Clock
	log   *zap.Logger
	in    io.Reader
	out   io.Writer
}

// New creates a session over the given book. The clock is injectable so
// tests can pin "now" for the birthday window; production passes
// clock.New(). The logger may be zap.NewNop().
func New(b *book.AddressBook, store book.Store, clk clock.Clock, log *zap.Logger, in io.Reader, out io.Writer) *Bot {
	return &Bot{
		book:  b,
		store: store,
		clock: clk,
		log:   log,
		in:    in,
		out:   out,
	}
}

// Run executes the session loop: prompt, read one line, dispatch, print
// one line or block, until "close", "exit", or end of input. On exit the
// whole book is saved through the store; a save failure is logged, still
// followed by the farewell, and returned as the session's error.
func (bot *Bot) Run() error {
	fmt.Fprintln(bot.out, msgWelcome)

	scanner := bufio.NewScanner(bot.in)
	for {
		fmt.Fprint(bot.out, msgPrompt)
		if !scanner.Scan() {
			// End of input behaves like close.
			break
		}
		command, args := Parse(scanner.Text())
		if command == "close" || command == "exit" {
			break
		}
		bot.log.Debug("dispatching command",
			zap.String("command", command),
			zap.Int("args", len(args)))
		fmt.Fprintln(bot.out, bot.dispatch(command, args))
	}
	if err := scanner.Err(); err != nil {
		bot.log.Warn("reading input", zap.Error(err))
	}

	var saveErr error
	if err := bot.store.Save(bot.book); err != nil {
		bot.log.Error("saving address book", zap.Error(err))
		saveErr = fmt.Errorf("save address book: %w", err)
	}
	fmt.Fprintln(bot.out, msgGoodbye)
	return saveErr
}

// dispatch routes one parsed command to its handler and converts any
// expected failure to its user-facing message. Unknown commands,
// including the empty command from a blank line, fall through to
// "Invalid command."; nothing raises past this boundary.
func (bot *Bot) dispatch(command string, args []string) string {
	var (
		msg string
		err error
	)
	switch command {
	case "hello":
		return msgHello
	case "add":
		msg, err = addContact(args, bot.book)
	case "change":
		msg, err = changeContact(args, bot.book)
	case "phone":
		msg, err = showPhone(args, bot.book)
	case "all":
		return listAll(bot.book)
	case "remove":
		msg, err = removeContact(args, bot.book)
	case "add-birthday":
		msg, err = addBirthday(args, bot.book)
	case "show-birthday":
		msg, err = showBirthday(args, bot.book)
	case "birthdays":
		return listBirthdays(bot.book, bot.clock.Now())
	default:
		return msgInvalidCommand
	}
	if err != nil {
		bot.log.Debug("command failed",
			zap.String("command", command),
			zap.Error(err))
		return errorMessage(err)
	}
	return msg
}
