package dao

import (
	"errors"

	"DAOKit/modules/value"
)

var ProductKeys = struct {
	About, Price, SKU, Title string
}{"about", "price", "sku", "title"}

type Product struct {
	BaseObject
	About value.Text
	Price float64
	SKU   string
	Title value.Text
}

type ProductEntity interface {
	Object
	AsProduct() *Product
}

var _ ProductEntity = (*Product)(nil)

func NewProduct() *Product {
	return &Product{BaseObject: NewBaseObject()}
}

func NewProductWithID(id string) *Product {
	return &Product{BaseObject: NewBaseObjectWithID(id)}
}

func (p *Product) AsProduct() *Product { return p }

func (p *Product) Copy() *Product {
	out := &Product{}
	out.copyFrom(p)
	return out
}

func (p *Product) Clone() Object { return p.Copy() }

func (p *Product) Update(from Object) {
	if src, ok := from.(ProductEntity); ok && !isNil(src) {
		p.copyFrom(src.AsProduct())
	}
}

func (p *Product) copyFrom(src *Product) {
	if src == p {
		return
	}
	p.UpdateBase(&src.BaseObject)
	p.About = src.About.Copy()
	p.Price = src.Price
	p.SKU = src.SKU
	p.Title = src.Title.Copy()
}

func (p *Product) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(ProductEntity)
	if !ok || isNil(r) {
		return true
	}
	return p.Diff(r.AsProduct())
}

func (p *Product) Diff(rhs *Product) bool {
	if p == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return p.DiffBase(&rhs.BaseObject) ||
		p.Price != rhs.Price ||
		p.SKU != rhs.SKU ||
		!p.About.Equal(rhs.About) ||
		!p.Title.Equal(rhs.Title)
}

func (p *Product) Translate(data Dictionary, reg *Registry) {
	p.TranslateBase(data, reg)
	r := Read(data)
	r.Text(ProductKeys.About, &p.About)
	r.Float(ProductKeys.Price, &p.Price)
	r.String(ProductKeys.SKU, &p.SKU)
	r.Text(ProductKeys.Title, &p.Title)
}

func (p *Product) AsDictionary() Dictionary {
	return Merge(p.BaseDictionary(), Dictionary{
		ProductKeys.About: p.About.ToDictionary(),
		ProductKeys.Price: p.Price,
		ProductKeys.SKU:   p.SKU,
		ProductKeys.Title: p.Title.ToDictionary(),
	})
}

func (p *Product) EncodeFields(enc *Encoder) error {
	if err := p.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(ProductKeys.About, p.About)
	enc.Put(ProductKeys.Price, p.Price)
	enc.Put(ProductKeys.SKU, p.SKU)
	enc.Put(ProductKeys.Title, p.Title)
	return nil
}

func (p *Product) DecodeFields(dec *Decoder) error {
	if err := p.DecodeBase(dec); err != nil {
		return err
	}
	return errors.Join(
		dec.Text(ProductKeys.About, &p.About),
		dec.Float(ProductKeys.Price, &p.Price),
		dec.String(ProductKeys.SKU, &p.SKU),
		dec.Text(ProductKeys.Title, &p.Title),
	)
}

var BasketKeys = struct {
	Account, Items, Place string
}{"account", "items", "place"}

// Basket 是购物篮；加入的条目通过 AddItem 回指本篮子。
type Basket struct {
	BaseObject
	Account AccountEntity
	Items   []BasketItemEntity
	Place   PlaceEntity
}

type BasketEntity interface {
	Object
	AsBasket() *Basket
}

var _ BasketEntity = (*Basket)(nil)

func NewBasket() *Basket {
	return &Basket{BaseObject: NewBaseObject()}
}

func NewBasketWithID(id string) *Basket {
	return &Basket{BaseObject: NewBaseObjectWithID(id)}
}

func (b *Basket) AsBasket() *Basket { return b }

func (b *Basket) AddItem(item BasketItemEntity) {
	if isNil(item) {
		return
	}
	item.AsBasketItem().Basket = b
	b.Items = append(b.Items, item)
}

// Subtotal 是条目单价乘数量之和。
func (b *Basket) Subtotal() float64 {
	var sum float64
	for _, it := range b.Items {
		if !isNil(it) {
			i := it.AsBasketItem()
			sum += i.Price * float64(i.Quantity)
		}
	}
	return sum
}

func (b *Basket) Copy() *Basket {
	out := &Basket{}
	out.copyFrom(b)
	return out
}

func (b *Basket) Clone() Object { return b.Copy() }

func (b *Basket) Update(from Object) {
	if src, ok := from.(BasketEntity); ok && !isNil(src) {
		b.copyFrom(src.AsBasket())
	}
}

func (b *Basket) copyFrom(src *Basket) {
	if src == b {
		return
	}
	b.UpdateBase(&src.BaseObject)
	b.Account = CloneObject(src.Account)
	b.Items = CloneObjects(src.Items)
	for _, it := range b.Items {
		it.AsBasketItem().Basket = b
	}
	b.Place = CloneObject(src.Place)
}

func (b *Basket) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(BasketEntity)
	if !ok || isNil(r) {
		return true
	}
	return b.Diff(r.AsBasket())
}

func (b *Basket) Diff(rhs *Basket) bool {
	if b == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return b.DiffBase(&rhs.BaseObject) ||
		DiffObject(b.Account, rhs.Account) ||
		DiffObjects(b.Items, rhs.Items) ||
		DiffObject(b.Place, rhs.Place)
}

func (b *Basket) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	b.TranslateBase(data, reg)
	reg.Account.Read(data, BasketKeys.Account, reg, &b.Account)
	if reg.BasketItem.ReadArray(data, BasketKeys.Items, reg, &b.Items) {
		for _, it := range b.Items {
			it.AsBasketItem().Basket = b
		}
	}
	reg.Place.Read(data, BasketKeys.Place, reg, &b.Place)
}

func (b *Basket) AsDictionary() Dictionary {
	return Merge(b.BaseDictionary(), Dictionary{
		BasketKeys.Account: ObjectDictionary(b.Account),
		BasketKeys.Items:   ObjectsDictionary(b.Items),
		BasketKeys.Place:   ObjectDictionary(b.Place),
	})
}

func (b *Basket) EncodeFields(enc *Encoder) error {
	if err := b.EncodeBase(enc); err != nil {
		return err
	}
	return errors.Join(
		PutObject(enc, BasketKeys.Account, b.Account),
		PutObjects(enc, BasketKeys.Items, b.Items),
		PutObject(enc, BasketKeys.Place, b.Place),
	)
}

func (b *Basket) DecodeFields(dec *Decoder) error {
	if err := b.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	err := errors.Join(
		reg.Account.DecodeField(dec, BasketKeys.Account, &b.Account),
		reg.BasketItem.DecodeArrayField(dec, BasketKeys.Items, &b.Items),
		reg.Place.DecodeField(dec, BasketKeys.Place, &b.Place),
	)
	for _, it := range b.Items {
		it.AsBasketItem().Basket = b
	}
	return err
}

var BasketItemKeys = struct {
	Account, Basket, Place, Quantity string
}{"account", "basket", "place", "quantity"}

// BasketItem 是篮子里的一件商品，只能作为 Basket 的条目出现。Basket 是反向引用。
type BasketItem struct {
	Product
	nestedOnlyMarker
	Account  AccountEntity
	Basket   BasketEntity
	Place    PlaceEntity
	Quantity int
}

type BasketItemEntity interface {
	Object
	AsBasketItem() *BasketItem
}

var _ BasketItemEntity = (*BasketItem)(nil)

func NewBasketItem() *BasketItem {
	return &BasketItem{Product: *NewProduct()}
}

func NewBasketItemWithID(id string) *BasketItem {
	return &BasketItem{Product: *NewProductWithID(id)}
}

func (i *BasketItem) AsBasketItem() *BasketItem { return i }

func (i *BasketItem) Copy() *BasketItem {
	out := &BasketItem{}
	out.copyFrom(i)
	return out
}

func (i *BasketItem) Clone() Object { return i.Copy() }

// Update 来源只是 Product 时只复制商品部分。
func (i *BasketItem) Update(from Object) {
	switch src := from.(type) {
	case BasketItemEntity:
		if !isNil(src) {
			i.copyFrom(src.AsBasketItem())
		}
	case ProductEntity:
		if !isNil(src) {
			i.Product.copyFrom(src.AsProduct())
		}
	}
}

func (i *BasketItem) copyFrom(src *BasketItem) {
	if src == i {
		return
	}
	i.Product.copyFrom(&src.Product)
	i.Account = CloneObject(src.Account)
	i.Basket = src.Basket
	i.Place = CloneObject(src.Place)
	i.Quantity = src.Quantity
}

func (i *BasketItem) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(BasketItemEntity)
	if !ok || isNil(r) {
		return true
	}
	return i.Diff(r.AsBasketItem())
}

func (i *BasketItem) Diff(rhs *BasketItem) bool {
	if i == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return i.Product.Diff(&rhs.Product) ||
		i.Quantity != rhs.Quantity ||
		!SameRef(i.Basket, rhs.Basket) ||
		DiffObject(i.Account, rhs.Account) ||
		DiffObject(i.Place, rhs.Place)
}

func (i *BasketItem) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	i.Product.Translate(data, reg)
	reg.Account.Read(data, BasketItemKeys.Account, reg, &i.Account)
	reg.Basket.ReadRef(data, BasketItemKeys.Basket, &i.Basket)
	reg.Place.Read(data, BasketItemKeys.Place, reg, &i.Place)
	Read(data).Int(BasketItemKeys.Quantity, &i.Quantity)
}

func (i *BasketItem) AsDictionary() Dictionary {
	return Merge(i.Product.AsDictionary(), Dictionary{
		BasketItemKeys.Account:  ObjectDictionary(i.Account),
		BasketItemKeys.Basket:   ObjectID(i.Basket),
		BasketItemKeys.Place:    ObjectDictionary(i.Place),
		BasketItemKeys.Quantity: i.Quantity,
	})
}

func (i *BasketItem) EncodeFields(enc *Encoder) error {
	if err := i.Product.EncodeFields(enc); err != nil {
		return err
	}
	enc.Put(BasketItemKeys.Basket, ObjectID(i.Basket))
	enc.Put(BasketItemKeys.Quantity, i.Quantity)
	return errors.Join(
		PutObject(enc, BasketItemKeys.Account, i.Account),
		PutObject(enc, BasketItemKeys.Place, i.Place),
	)
}

func (i *BasketItem) DecodeFields(dec *Decoder) error {
	if err := i.Product.DecodeFields(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	return errors.Join(
		reg.Account.DecodeField(dec, BasketItemKeys.Account, &i.Account),
		reg.Basket.DecodeRef(dec, BasketItemKeys.Basket, &i.Basket),
		reg.Place.DecodeField(dec, BasketItemKeys.Place, &i.Place),
		dec.Int(BasketItemKeys.Quantity, &i.Quantity),
	)
}

var OrderKeys = struct {
	Account, Items, Place, State, Subtotal, Tax, Total, Transaction string
}{
	Account:     "account",
	Items:       "items",
	Place:       "place",
	State:       "state",
	Subtotal:    "subtotal",
	Tax:         "tax",
	Total:       "total",
	Transaction: "transaction",
}

type Order struct {
	BaseObject
	Account     AccountEntity
	Items       []OrderItemEntity
	Place       PlaceEntity
	State       OrderState
	Subtotal    float64
	Tax         float64
	Total       float64
	Transaction TransactionEntity
}

type OrderEntity interface {
	Object
	AsOrder() *Order
}

var _ OrderEntity = (*Order)(nil)

func NewOrder() *Order {
	return &Order{BaseObject: NewBaseObject(), State: OrderStateUnknown}
}

func NewOrderWithID(id string) *Order {
	return &Order{BaseObject: NewBaseObjectWithID(id), State: OrderStateUnknown}
}

func (o *Order) AsOrder() *Order { return o }

func (o *Order) AddItem(item OrderItemEntity) {
	if isNil(item) {
		return
	}
	item.AsOrderItem().Order = o
	o.Items = append(o.Items, item)
}

func (o *Order) relink() {
	for _, it := range o.Items {
		it.AsOrderItem().Order = o
	}
}

func (o *Order) Copy() *Order {
	out := &Order{}
	out.copyFrom(o)
	return out
}

func (o *Order) Clone() Object { return o.Copy() }

func (o *Order) Update(from Object) {
	if src, ok := from.(OrderEntity); ok && !isNil(src) {
		o.copyFrom(src.AsOrder())
	}
}

func (o *Order) copyFrom(src *Order) {
	if src == o {
		return
	}
	o.UpdateBase(&src.BaseObject)
	o.Account = CloneObject(src.Account)
	o.Items = CloneObjects(src.Items)
	o.relink()
	o.Place = CloneObject(src.Place)
	o.State = src.State
	o.Subtotal = src.Subtotal
	o.Tax = src.Tax
	o.Total = src.Total
	o.Transaction = CloneObject(src.Transaction)
}

func (o *Order) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(OrderEntity)
	if !ok || isNil(r) {
		return true
	}
	return o.Diff(r.AsOrder())
}

func (o *Order) Diff(rhs *Order) bool {
	if o == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return o.DiffBase(&rhs.BaseObject) ||
		o.State != rhs.State ||
		o.Subtotal != rhs.Subtotal ||
		o.Tax != rhs.Tax ||
		o.Total != rhs.Total ||
		DiffObject(o.Account, rhs.Account) ||
		DiffObjects(o.Items, rhs.Items) ||
		DiffObject(o.Place, rhs.Place) ||
		DiffObject(o.Transaction, rhs.Transaction)
}

func (o *Order) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	o.TranslateBase(data, reg)
	r := Read(data)
	reg.Account.Read(data, OrderKeys.Account, reg, &o.Account)
	if reg.OrderItem.ReadArray(data, OrderKeys.Items, reg, &o.Items) {
		o.relink()
	}
	reg.Place.Read(data, OrderKeys.Place, reg, &o.Place)
	ReadStringEnum(r, OrderKeys.State, &o.State)
	r.Float(OrderKeys.Subtotal, &o.Subtotal)
	r.Float(OrderKeys.Tax, &o.Tax)
	r.Float(OrderKeys.Total, &o.Total)
	reg.Transaction.Read(data, OrderKeys.Transaction, reg, &o.Transaction)
}

func (o *Order) AsDictionary() Dictionary {
	return Merge(o.BaseDictionary(), Dictionary{
		OrderKeys.Account:     ObjectDictionary(o.Account),
		OrderKeys.Items:       ObjectsDictionary(o.Items),
		OrderKeys.Place:       ObjectDictionary(o.Place),
		OrderKeys.State:       string(o.State),
		OrderKeys.Subtotal:    o.Subtotal,
		OrderKeys.Tax:         o.Tax,
		OrderKeys.Total:       o.Total,
		OrderKeys.Transaction: ObjectDictionary(o.Transaction),
	})
}

func (o *Order) EncodeFields(enc *Encoder) error {
	if err := o.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(OrderKeys.State, string(o.State))
	enc.Put(OrderKeys.Subtotal, o.Subtotal)
	enc.Put(OrderKeys.Tax, o.Tax)
	enc.Put(OrderKeys.Total, o.Total)
	return errors.Join(
		PutObject(enc, OrderKeys.Account, o.Account),
		PutObjects(enc, OrderKeys.Items, o.Items),
		PutObject(enc, OrderKeys.Place, o.Place),
		PutObject(enc, OrderKeys.Transaction, o.Transaction),
	)
}

func (o *Order) DecodeFields(dec *Decoder) error {
	if err := o.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	err := errors.Join(
		reg.Account.DecodeField(dec, OrderKeys.Account, &o.Account),
		reg.OrderItem.DecodeArrayField(dec, OrderKeys.Items, &o.Items),
		reg.Place.DecodeField(dec, OrderKeys.Place, &o.Place),
		DecodeStringEnum(dec, OrderKeys.State, &o.State),
		dec.Float(OrderKeys.Subtotal, &o.Subtotal),
		dec.Float(OrderKeys.Tax, &o.Tax),
		dec.Float(OrderKeys.Total, &o.Total),
		reg.Transaction.DecodeField(dec, OrderKeys.Transaction, &o.Transaction),
	)
	o.relink()
	return err
}

var OrderItemKeys = struct {
	Account, Order, Place, Quantity string
}{"account", "order", "place", "quantity"}

// OrderItem 只能作为 Order 的条目出现，Order 是反向引用。
type OrderItem struct {
	Product
	nestedOnlyMarker
	Account  AccountEntity
	Order    OrderEntity
	Place    PlaceEntity
	Quantity int
}

type OrderItemEntity interface {
	Object
	AsOrderItem() *OrderItem
}

var _ OrderItemEntity = (*OrderItem)(nil)

func NewOrderItem() *OrderItem {
	return &OrderItem{Product: *NewProduct()}
}

func NewOrderItemWithID(id string) *OrderItem {
	return &OrderItem{Product: *NewProductWithID(id)}
}

func (i *OrderItem) AsOrderItem() *OrderItem { return i }

func (i *OrderItem) Copy() *OrderItem {
	out := &OrderItem{}
	out.copyFrom(i)
	return out
}

func (i *OrderItem) Clone() Object { return i.Copy() }

func (i *OrderItem) Update(from Object) {
	switch src := from.(type) {
	case OrderItemEntity:
		if !isNil(src) {
			i.copyFrom(src.AsOrderItem())
		}
	case ProductEntity:
		if !isNil(src) {
			i.Product.copyFrom(src.AsProduct())
		}
	}
}

func (i *OrderItem) copyFrom(src *OrderItem) {
	if src == i {
		return
	}
	i.Product.copyFrom(&src.Product)
	i.Account = CloneObject(src.Account)
	i.Order = src.Order
	i.Place = CloneObject(src.Place)
	i.Quantity = src.Quantity
}

func (i *OrderItem) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(OrderItemEntity)
	if !ok || isNil(r) {
		return true
	}
	return i.Diff(r.AsOrderItem())
}

func (i *OrderItem) Diff(rhs *OrderItem) bool {
	if i == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return i.Product.Diff(&rhs.Product) ||
		i.Quantity != rhs.Quantity ||
		!SameRef(i.Order, rhs.Order) ||
		DiffObject(i.Account, rhs.Account) ||
		DiffObject(i.Place, rhs.Place)
}

func (i *OrderItem) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	i.Product.Translate(data, reg)
	reg.Account.Read(data, OrderItemKeys.Account, reg, &i.Account)
	reg.Order.ReadRef(data, OrderItemKeys.Order, &i.Order)
	reg.Place.Read(data, OrderItemKeys.Place, reg, &i.Place)
	Read(data).Int(OrderItemKeys.Quantity, &i.Quantity)
}

func (i *OrderItem) AsDictionary() Dictionary {
	return Merge(i.Product.AsDictionary(), Dictionary{
		OrderItemKeys.Account:  ObjectDictionary(i.Account),
		OrderItemKeys.Order:    ObjectID(i.Order),
		OrderItemKeys.Place:    ObjectDictionary(i.Place),
		OrderItemKeys.Quantity: i.Quantity,
	})
}

func (i *OrderItem) EncodeFields(enc *Encoder) error {
	if err := i.Product.EncodeFields(enc); err != nil {
		return err
	}
	enc.Put(OrderItemKeys.Order, ObjectID(i.Order))
	enc.Put(OrderItemKeys.Quantity, i.Quantity)
	return errors.Join(
		PutObject(enc, OrderItemKeys.Account, i.Account),
		PutObject(enc, OrderItemKeys.Place, i.Place),
	)
}

func (i *OrderItem) DecodeFields(dec *Decoder) error {
	if err := i.Product.DecodeFields(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	return errors.Join(
		reg.Account.DecodeField(dec, OrderItemKeys.Account, &i.Account),
		reg.Order.DecodeRef(dec, OrderItemKeys.Order, &i.Order),
		reg.Place.DecodeField(dec, OrderItemKeys.Place, &i.Place),
		dec.Int(OrderItemKeys.Quantity, &i.Quantity),
	)
}

var TransactionKeys = struct {
	Amount, Card, Confirmation, Order, Tax, Tip, Type string
}{"amount", "card", "confirmation", "order", "tax", "tip", "type"}

// Transaction 是一次支付。Card 和 Order 都只保存 id 引用。
type Transaction struct {
	BaseObject
	Amount       float64
	Card         CardEntity
	Confirmation string
	Order        OrderEntity
	Tax          float64
	Tip          float64
	Type         string
}

type TransactionEntity interface {
	Object
	AsTransaction() *Transaction
}

var _ TransactionEntity = (*Transaction)(nil)

func NewTransaction() *Transaction {
	return &Transaction{BaseObject: NewBaseObject()}
}

func NewTransactionWithID(id string) *Transaction {
	return &Transaction{BaseObject: NewBaseObjectWithID(id)}
}

func (t *Transaction) AsTransaction() *Transaction { return t }

// Total 是金额、税、小费之和。
func (t *Transaction) Total() float64 {
	return t.Amount + t.Tax + t.Tip
}

func (t *Transaction) Copy() *Transaction {
	out := &Transaction{}
	out.copyFrom(t)
	return out
}

func (t *Transaction) Clone() Object { return t.Copy() }

func (t *Transaction) Update(from Object) {
	if src, ok := from.(TransactionEntity); ok && !isNil(src) {
		t.copyFrom(src.AsTransaction())
	}
}

func (t *Transaction) copyFrom(src *Transaction) {
	if src == t {
		return
	}
	t.UpdateBase(&src.BaseObject)
	t.Amount = src.Amount
	t.Card = src.Card
	t.Confirmation = src.Confirmation
	t.Order = src.Order
	t.Tax = src.Tax
	t.Tip = src.Tip
	t.Type = src.Type
}

func (t *Transaction) IsDiffFrom(rhs Object) bool {
	r, ok := rhs.(TransactionEntity)
	if !ok || isNil(r) {
		return true
	}
	return t.Diff(r.AsTransaction())
}

func (t *Transaction) Diff(rhs *Transaction) bool {
	if t == rhs {
		return false
	}
	if rhs == nil {
		return true
	}
	return t.DiffBase(&rhs.BaseObject) ||
		t.Amount != rhs.Amount ||
		t.Confirmation != rhs.Confirmation ||
		t.Tax != rhs.Tax ||
		t.Tip != rhs.Tip ||
		t.Type != rhs.Type ||
		!SameRef(t.Card, rhs.Card) ||
		!SameRef(t.Order, rhs.Order)
}

func (t *Transaction) Translate(data Dictionary, reg *Registry) {
	reg = Resolve(reg)
	t.TranslateBase(data, reg)
	r := Read(data)
	r.Float(TransactionKeys.Amount, &t.Amount)
	reg.Card.ReadRef(data, TransactionKeys.Card, &t.Card)
	r.String(TransactionKeys.Confirmation, &t.Confirmation)
	reg.Order.ReadRef(data, TransactionKeys.Order, &t.Order)
	r.Float(TransactionKeys.Tax, &t.Tax)
	r.Float(TransactionKeys.Tip, &t.Tip)
	r.String(TransactionKeys.Type, &t.Type)
}

func (t *Transaction) AsDictionary() Dictionary {
	return Merge(t.BaseDictionary(), Dictionary{
		TransactionKeys.Amount:       t.Amount,
		TransactionKeys.Card:         ObjectID(t.Card),
		TransactionKeys.Confirmation: t.Confirmation,
		TransactionKeys.Order:        ObjectID(t.Order),
		TransactionKeys.Tax:          t.Tax,
		TransactionKeys.Tip:          t.Tip,
		TransactionKeys.Type:         t.Type,
	})
}

func (t *Transaction) EncodeFields(enc *Encoder) error {
	if err := t.EncodeBase(enc); err != nil {
		return err
	}
	enc.Put(TransactionKeys.Amount, t.Amount)
	enc.Put(TransactionKeys.Card, ObjectID(t.Card))
	enc.Put(TransactionKeys.Confirmation, t.Confirmation)
	enc.Put(TransactionKeys.Order, ObjectID(t.Order))
	enc.Put(TransactionKeys.Tax, t.Tax)
	enc.Put(TransactionKeys.Tip, t.Tip)
	enc.Put(TransactionKeys.Type, t.Type)
	return nil
}

func (t *Transaction) DecodeFields(dec *Decoder) error {
	if err := t.DecodeBase(dec); err != nil {
		return err
	}
	reg := dec.Registry()
	return errors.Join(
		dec.Float(TransactionKeys.Amount, &t.Amount),
		reg.Card.DecodeRef(dec, TransactionKeys.Card, &t.Card),
		dec.String(TransactionKeys.Confirmation, &t.Confirmation),
		reg.Order.DecodeRef(dec, TransactionKeys.Order, &t.Order),
		dec.Float(TransactionKeys.Tax, &t.Tax),
		dec.Float(TransactionKeys.Tip, &t.Tip),
		dec.String(TransactionKeys.Type, &t.Type),
	)
}
